package wire_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXML(t *testing.T) {
	t.Parallel()

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<subscriptions type="array">
  <!-- first page -->
  <subscription>
    <id type="integer">1</id>
    <customer>
      <first_name>Ada</first_name>
    </customer>
  </subscription>
</subscriptions>
`

	root, err := wire.ParseXML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "subscriptions", root.Name())
	assert.Equal(t, "array", root.Attr("type"))
	assert.Empty(t, root.Text)
	require.Len(t, root.Children, 1)

	sub := root.Child("subscription")
	require.NotNil(t, sub)
	assert.Equal(t, "1", sub.Child("id").Text)
	assert.Equal(t, "Ada", root.Find("first_name").Text)
	assert.Same(t, root, root.Find("subscriptions"))
	assert.Nil(t, root.Find("product"))
	assert.Nil(t, sub.Child("product"))
}

func TestParseXML_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "empty", doc: "", wantErr: wire.ErrEmptyDocument},
		{name: "whitespace only", doc: "  \n", wantErr: wire.ErrEmptyDocument},
		{name: "second root", doc: "<a/><b/>", wantErr: wire.ErrTrailingContent},
		{name: "trailing text", doc: "<a/>oops", wantErr: wire.ErrTrailingContent},
		{name: "leading text", doc: "oops<a/>", wantErr: wire.ErrLeadingContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := wire.ParseXML([]byte(tt.doc))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := wire.ParseXML([]byte("<a><b></a>"))
	require.Error(t, err)
}

func TestNode_Builders(t *testing.T) {
	t.Parallel()

	amount := decimal.RequireFromString("-10.5")
	qty := 3
	flag := false

	root := wire.NewNode("charge")
	root.AddID("id", 0)
	root.AddText("memo", "")
	root.AddText("memo", "Setup fee")
	root.AddInt("quantity", 2)
	root.AddInt64("amount_in_cents", 1500)
	root.AddOptionalInt("allocated", nil)
	root.AddOptionalInt("unit_balance", &qty)
	root.AddAmount("amount", &amount)
	root.AddAmount("missing", nil)
	root.AddOptionalBool("taxable", &flag)
	root.AddTime("created_at", time.Time{})
	root.AddTime("updated_at", time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))

	names := make([]string, 0, len(root.Children))
	for _, c := range root.Children {
		names = append(names, c.Name())
	}

	assert.Equal(t, []string{"memo", "quantity", "amount_in_cents", "unit_balance", "amount", "taxable", "updated_at"}, names)
	assert.Equal(t, "-10.50", root.Child("amount").Text)
	assert.Equal(t, "decimal", root.Child("amount").Attr("type"))
	assert.Equal(t, "integer", root.Child("quantity").Attr("type"))
	assert.Equal(t, "false", root.Child("taxable").Text)
	assert.Equal(t, "2024-05-06T07:08:09Z", root.Child("updated_at").Text)
}

func TestMarshalXML(t *testing.T) {
	t.Parallel()

	root := wire.NewNode("customer")
	root.AddText("organization", `Lovelace & Babbage <Analytical>`)
	root.AddInt("id", 7)

	out, err := wire.MarshalXML(root)
	require.NoError(t, err)

	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
			`<customer><organization>Lovelace &amp; Babbage &lt;Analytical&gt;</organization><id type="integer">7</id></customer>`,
		string(out))

	parsed, err := wire.ParseXML(out)
	require.NoError(t, err)
	assert.Equal(t, `Lovelace & Babbage <Analytical>`, parsed.Child("organization").Text)

	_, err = wire.MarshalXML(nil)
	require.ErrorIs(t, err, wire.ErrNilNode)
}
