package styles

import "github.com/charmbracelet/lipgloss"

// --- Typography ---

var (
	// Title is the menu header style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// ErrorDetail is for the body of an error message after its label.
	ErrorDetail = lipgloss.NewStyle().
			Foreground(Red)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// --- Menu columns ---

var (
	// ServerName renders the name column and the chosen server's name.
	ServerName = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)

	// Address renders host[:port].
	Address = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	// Comment renders the trailing "(comment)" column.
	Comment = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)

	// Chosen labels the confirmation line printed before connecting.
	Chosen = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)
)

// --- Settings editor ---

var (
	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// Label is used for setting names.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for setting values.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// AccentText marks the selected row.
	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	// Card is a rounded-border panel.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DimGray).
		Padding(1, 2)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Gray)

	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}

// ErrorLine formats a fatal error the way the CLI prints it to stderr.
func ErrorLine(err error) string {
	return ErrorText.Render("Error:") + " " + ErrorDetail.Render(err.Error())
}
