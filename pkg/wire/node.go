package wire

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// XML type attribute values understood by the transcoder.
const (
	TypeInteger  = "integer"
	TypeDecimal  = "decimal"
	TypeBoolean  = "boolean"
	TypeDateTime = "datetime"
	TypeArray    = "array"
)

const (
	attrType = "type"
	attrNil  = "nil"
)

// Static errors for err113 compliance.
var (
	ErrEmptyDocument    = errors.New("document has no root element")
	ErrLeadingContent   = errors.New("unexpected content before root element")
	ErrTrailingContent  = errors.New("unexpected content after root element")
	ErrNilNode          = errors.New("nil node")
	ErrUnsupportedValue = errors.New("unsupported JSON value")
)

// Node is a generic XML element. Only element children are kept; comments and
// processing instructions are dropped while parsing.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []*Node    `xml:",any"`
}

// NewNode creates an empty element.
func NewNode(name string) *Node {
	return &Node{XMLName: xml.Name{Local: name}}
}

// Name returns the local element name.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}

	return n.XMLName.Local
}

// Attr returns the value of the named attribute or "".
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

// SetAttr sets or replaces an attribute.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name.Local == name {
			n.Attrs[i].Value = value

			return n
		}
	}

	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})

	return n
}

// IsNil reports whether the element carries nil="true".
func (n *Node) IsNil() bool {
	return n == nil || n.Attr(attrNil) == "true"
}

// IsLeaf reports whether the element has no element children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Child returns the first direct child with the given name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// Find returns the first element named name in depth-first order, starting
// with n itself.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}

	if n.Name() == name {
		return n
	}

	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}

	return nil
}

// AddChild appends child and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)

	return child
}

// AddElement appends a new empty element and returns it.
func (n *Node) AddElement(name string) *Node {
	return n.AddChild(NewNode(name))
}

// AddArray appends a new element marked type="array" and returns it.
func (n *Node) AddArray(name string) *Node {
	return n.AddElement(name).SetAttr(attrType, TypeArray)
}

func (n *Node) addLeaf(name, text, typ string) {
	leaf := n.AddElement(name)
	leaf.Text = text

	if typ != "" {
		leaf.SetAttr(attrType, typ)
	}
}

// AddText appends a text element unless value is empty.
func (n *Node) AddText(name, value string) {
	if value == "" {
		return
	}

	n.addLeaf(name, value, "")
}

// AddID appends an integer identifier unless it is zero (not yet assigned).
func (n *Node) AddID(name string, value int) {
	if value == 0 {
		return
	}

	n.AddInt(name, value)
}

// AddInt appends an integer element.
func (n *Node) AddInt(name string, value int) {
	n.addLeaf(name, strconv.Itoa(value), TypeInteger)
}

// AddInt64 appends an integer element.
func (n *Node) AddInt64(name string, value int64) {
	n.addLeaf(name, strconv.FormatInt(value, 10), TypeInteger)
}

// AddOptionalInt appends an integer element when value is set.
func (n *Node) AddOptionalInt(name string, value *int) {
	if value != nil {
		n.AddInt(name, *value)
	}
}

// AddOptionalInt64 appends an integer element when value is set.
func (n *Node) AddOptionalInt64(name string, value *int64) {
	if value != nil {
		n.AddInt64(name, *value)
	}
}

// AddDecimal appends a decimal element in its shortest exact form.
func (n *Node) AddDecimal(name string, value decimal.Decimal) {
	n.addLeaf(name, value.String(), TypeDecimal)
}

// AddOptionalDecimal appends a decimal element when value is set.
func (n *Node) AddOptionalDecimal(name string, value *decimal.Decimal) {
	if value != nil {
		n.AddDecimal(name, *value)
	}
}

// AddAmount appends a currency amount rendered with FormatAmount when value is set.
func (n *Node) AddAmount(name string, value *decimal.Decimal) {
	if value != nil {
		n.addLeaf(name, FormatAmount(*value), TypeDecimal)
	}
}

// AddBool appends a boolean element.
func (n *Node) AddBool(name string, value bool) {
	n.addLeaf(name, strconv.FormatBool(value), TypeBoolean)
}

// AddOptionalBool appends a boolean element when value is set.
func (n *Node) AddOptionalBool(name string, value *bool) {
	if value != nil {
		n.AddBool(name, *value)
	}
}

// AddTime appends an RFC 3339 timestamp unless t is the zero time.
func (n *Node) AddTime(name string, t time.Time) {
	if t.IsZero() {
		return
	}

	n.addLeaf(name, t.UTC().Format(time.RFC3339), TypeDateTime)
}

// ParseXML parses a complete XML document and returns its root element.
// Anything other than whitespace, comments or processing instructions before
// or after the root element is an error.
func ParseXML(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	start, err := rootStart(dec)
	if err != nil {
		return nil, err
	}

	var root Node

	err = dec.DecodeElement(&root, &start)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("parsing XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return nil, ErrTrailingContent
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, ErrTrailingContent
			}
		}
	}

	root.clean()

	return &root, nil
}

// rootStart consumes the prolog up to the root start element. Text other
// than whitespace before the root is an error.
func rootStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, ErrEmptyDocument
		}

		if err != nil {
			return xml.StartElement{}, fmt.Errorf("parsing XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return xml.StartElement{}, ErrLeadingContent
			}
		}
	}
}

// clean drops the inter-element whitespace collected as chardata on
// elements that have children.
func (n *Node) clean() {
	if len(n.Children) > 0 && strings.TrimSpace(n.Text) == "" {
		n.Text = ""
	}

	for _, c := range n.Children {
		c.clean()
	}
}

// MarshalXML renders n as a standalone document with an XML declaration.
func MarshalXML(n *Node) ([]byte, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteByte('\n')

	enc := xml.NewEncoder(&buf)

	err := encodeNode(enc, n)
	if err != nil {
		return nil, fmt.Errorf("encoding XML: %w", err)
	}

	err = enc.Flush()
	if err != nil {
		return nil, fmt.Errorf("encoding XML: %w", err)
	}

	return buf.Bytes(), nil
}

func encodeNode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name()}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name.Local}, Value: a.Value})
	}

	err := enc.EncodeToken(start)
	if err != nil {
		return err
	}

	if len(n.Children) == 0 && n.Text != "" {
		err = enc.EncodeToken(xml.CharData(n.Text))
		if err != nil {
			return err
		}
	}

	for _, c := range n.Children {
		err = encodeNode(enc, c)
		if err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}
