package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// ввод коэффициентов
	InputMalformed Code = 1001
	InputMissing   Code = 1002

	// интерактивный режим
	UIAborted  Code = 2001
	UIFallback Code = 2002
)

var codeDescription = map[Code]string{
	UnknownCode:    "Unknown error",
	InputMalformed: "Value is not a real number",
	InputMissing:   "Input ended before a value was read",
	UIAborted:      "Interactive form was cancelled",
	UIFallback:     "Interactive form unavailable, using plain prompts",
}

// ID returns the short identifier, e.g. "INP1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("INP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("UI%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
