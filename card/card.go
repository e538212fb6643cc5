// Package card renders conversion outcomes as launcher result documents.
package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	launcher "go-currency-launcher"
)

const (
	TitleInvalidInput     = "Invalid Input Format"
	TitleConversionFailed = "Conversion Failed"

	copyIcon   = "preferences-system"
	copyMethod = "copy"
)

// Document the single JSON object written to stdout per run
type Document struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	NextContent string   `json:"next_content"`
	Actions     []Action `json:"actions"`
}

// Action something the launcher can do with the result
type Action struct {
	Name   *string `json:"name"`
	Exec   *string `json:"exec"`
	Icon   *string `json:"icon"`
	Method string  `json:"method"`
	Exit   bool    `json:"exit"`
}

// CopyAction an action copying text to the clipboard, labelled name
func CopyAction(name string, text string) Action {
	icon := copyIcon
	return Action{
		Name:   &name,
		Exec:   &text,
		Icon:   &icon,
		Method: copyMethod,
		Exit:   true,
	}
}

// Success renders a completed conversion
func Success(ex launcher.Exchanged) Document {
	r := ex.Request
	content := fmt.Sprintf(conversionTemplate,
		r.Amount, r.From, ex.Amount, r.To,
		r.From, ex.Rate, r.To,
		r.To, ex.Inverse, r.From,
		ex.Date,
	)
	return Document{
		Title:       ex.Title(),
		Content:     content,
		NextContent: content,
		Actions:     []Action{CopyAction(ex.Result(), ex.CopyText())},
	}
}

// Failure renders err for request. The template is chosen by the kind of the
// *launcher.Error in err's chain; any other error renders as a generic failure.
func Failure(request launcher.Request, err error) Document {
	var e *launcher.Error
	if !errors.As(err, &e) {
		e = launcher.GenericError("", err)
	}

	doc := Document{
		Title:   TitleConversionFailed,
		Actions: []Action{},
	}

	switch e.Kind {
	case launcher.KindParse:
		doc.Title = TitleInvalidInput
		doc.Content = usageTemplate
	case launcher.KindUnsupportedCurrency:
		doc.Content = fmt.Sprintf(unsupportedTemplate, request.From, request.To)
	case launcher.KindNetwork:
		doc.Content = fmt.Sprintf(networkTemplate, e)
	default: // KindGeneric
		doc.Content = fmt.Sprintf(genericTemplate, e)
	}
	return doc
}

// Write encodes d as one line of JSON. HTML escaping is off so the markup reaches the launcher as is.
func Write(w io.Writer, d Document) error {
	if d.Actions == nil {
		d.Actions = []Action{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&d); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}
