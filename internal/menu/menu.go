// Package menu renders the server list as an aligned table.
package menu

import (
	"fmt"
	"io"
	"strings"

	"ssh-roads/internal/domain"
	"ssh-roads/internal/placeholder"
	"ssh-roads/internal/tui/styles"

	"github.com/charmbracelet/x/ansi"
)

// Column widths, in terminal cells.
const (
	KeyWidth     = 6
	NameWidth    = 46
	AddressWidth = 21
)

// Header is printed above the table.
const Header = "Choose one server from below as the target:"

// Present writes the menu for servers to w in file order. Placeholders in
// ip and port are resolved through r; unresolved ones print literally.
func Present(w io.Writer, servers []domain.Server, r *placeholder.Resolver) {
	fmt.Fprintln(w, styles.Title.Render(Header))
	fmt.Fprintln(w)

	for _, s := range servers {
		fmt.Fprintln(w, Row(s, r))
	}

	fmt.Fprintln(w)
}

// Row formats a single menu line.
func Row(s domain.Server, r *placeholder.Resolver) string {
	host := r.Resolve(s.IP)
	port := r.Port(s.Port)

	return strings.Join([]string{
		Pad(s.Key, KeyWidth),
		styles.ServerName.Render(Pad(s.Name, NameWidth)),
		styles.Address.Render(Pad(placeholder.Address(host, port), AddressWidth)),
		styles.Comment.Render(commentSuffix(s.Comment)),
	}, " ")
}

// Pad right-pads s with spaces to width display cells. Wide characters
// count as two cells. Strings already at or past width are returned as is.
func Pad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func commentSuffix(comment string) string {
	if comment == "" {
		return ""
	}
	return "(" + comment + ")"
}
