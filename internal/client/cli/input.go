package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/term"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextWithDefault behaves like GetSimpleText but shows the current
// value and keeps it when the user enters an empty line. Edit flows use
// this so untouched fields survive a full-field update.
func GetTextWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, current), w)
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}
	return line, nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
func GetPassword(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetFloat reads a line and coerces it to float64; an empty line yields
// the provided default.
func GetFloat(reader *bufio.Reader, prompt string, def float64, w io.Writer) (float64, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%v]", prompt, def), w)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	return cast.ToFloat64E(line)
}

// GetStatus reads an Active/Inactive answer. Accepted spellings:
// "active", "a", "1" and "inactive", "i", "0"; empty keeps the default.
func GetStatus(reader *bufio.Reader, def models.Status, w io.Writer) (models.Status, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("Status (active/inactive) [%s]", def), w)
	if err != nil {
		return def, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "active", "a", "1":
		return models.StatusActive, nil
	case "inactive", "i", "0":
		return models.StatusInactive, nil
	default:
		return def, fmt.Errorf("unrecognized status %q", line)
	}
}

// Confirm asks a yes/no question; only "y"/"yes" counts as yes.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	line, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(line)
	return answer == "y" || answer == "yes", nil
}
