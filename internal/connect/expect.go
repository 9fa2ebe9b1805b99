package connect

import (
	"strconv"
	"strings"
)

// Environment variables read by the expect script.
const (
	EnvHost     = "SSH_HOST"
	EnvUser     = "SSH_USER"
	EnvPassword = "SSH_PSWD"
	EnvPort     = "SSH_PORT"
)

// expectScript reads everything from $env so nothing sensitive shows up in
// the process list. It fails on timeout or EOF before the password prompt
// and hands the session to the user once the password is sent.
const expectScript = `
set host $env(SSH_HOST)
set user $env(SSH_USER)
set pswd $env(SSH_PSWD)
set port $env(SSH_PORT)

spawn ssh $user@$host -p $port -o StrictHostKeyChecking=no
expect {
    "*assword:" {
        send -- "$pswd\n"
    }
    timeout {
        exit 1
    }
    eof {
        exit 1
    }
}
interact
`

// ExpectScript returns the script passed to `expect -c`. A positive
// timeout (seconds) is set before the prompt is awaited.
func ExpectScript(timeout int) string {
	if timeout <= 0 {
		return expectScript
	}
	var b strings.Builder
	b.WriteString("\nset timeout ")
	b.WriteString(strconv.Itoa(timeout))
	b.WriteString(expectScript)
	return b.String()
}

// ExpectCommand builds the expect invocation for a password login.
func ExpectCommand(t Target, password string, timeout int) Command {
	return Command{
		Name: ExpectBinary,
		Args: []string{"-c", ExpectScript(timeout)},
		Env: []string{
			EnvHost + "=" + t.Host,
			EnvUser + "=" + t.User,
			EnvPassword + "=" + password,
			EnvPort + "=" + strconv.Itoa(t.Port),
		},
	}
}
