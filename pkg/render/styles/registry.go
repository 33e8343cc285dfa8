package styles

import "github.com/moharchaudhuri17/tidytuesday/pkg/errors"

// ForName returns the style registered under name. Known names are
// "simple" and "poster".
func ForName(name string) (Style, error) {
	switch name {
	case "simple":
		return Simple{}, nil
	case "poster":
		return Poster{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style: "+name)
	}
}

// Names lists the registered style names.
func Names() []string {
	return []string{"simple", "poster"}
}
