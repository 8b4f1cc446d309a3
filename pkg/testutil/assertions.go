package testutil

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), expected)
	}
}

// XMLElement is a namespace-agnostic view of one element found in a document.
type XMLElement struct {
	Attrs map[string]string
	Text  string
}

// FindXML returns every element with the given local name in document order,
// ignoring namespaces.
func FindXML(t *testing.T, doc []byte, local string) []XMLElement {
	t.Helper()

	dec := xml.NewDecoder(strings.NewReader(string(doc)))
	var (
		found []XMLElement
		stack []*XMLElement
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local != local {
				stack = append(stack, nil)
				continue
			}
			e := &XMLElement{Attrs: make(map[string]string, len(el.Attr))}
			for _, a := range el.Attr {
				e.Attrs[a.Name.Local] = a.Value
			}
			stack = append(stack, e)
		case xml.CharData:
			if n := len(stack); n > 0 && stack[n-1] != nil {
				stack[n-1].Text += string(el)
			}
		case xml.EndElement:
			n := len(stack)
			if n == 0 {
				continue
			}
			if e := stack[n-1]; e != nil {
				e.Text = strings.TrimSpace(e.Text)
				found = append(found, *e)
			}
			stack = stack[:n-1]
		}
	}
	return found
}

// RequireXMLText returns the text of the first element with the given local name,
// failing the test if there is none.
func RequireXMLText(t *testing.T, doc []byte, local string) string {
	t.Helper()
	els := FindXML(t, doc, local)
	require.NotEmpty(t, els, "element %s not found", local)
	return els[0].Text
}
