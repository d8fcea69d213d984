package swapi

import (
	"encoding/xml"
	"strings"
	"testing"
)

func marshalBody(t *testing.T, op string, params Params) string {
	t.Helper()
	out, err := xml.Marshal(&rpcBody{op: op, params: params})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return string(out)
}

func TestRPCBodyMarshalPreservesParamOrder(t *testing.T) {
	got := marshalBody(t, "checkDomain", Params{
		{Name: "resellerID", Value: "12345"},
		{Name: "apiKey", Value: "secret"},
		{Name: "domainName", Value: "example.com"},
	})

	want := `<checkDomain xmlns="urn:WholesaleSystem">` +
		`<resellerID>12345</resellerID>` +
		`<apiKey>secret</apiKey>` +
		`<domainName>example.com</domainName>` +
		`</checkDomain>`
	if got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
}

func TestRPCBodyMarshalEncodesListsAsItems(t *testing.T) {
	got := marshalBody(t, "updateNameServers", Params{
		{Name: "domainName", Value: "example.com"},
		{Name: "nameServers", Value: []string{"ns1.example.com", "ns2.example.com"}},
	})

	if !strings.Contains(got, "<nameServers><item>ns1.example.com</item><item>ns2.example.com</item></nameServers>") {
		t.Fatalf("body = %s, want item-wrapped nameServers", got)
	}
}

func TestRPCBodyMarshalEncodesNestedObjects(t *testing.T) {
	got := marshalBody(t, "registerDomain", Params{
		{Name: "registrant_contact", Value: map[string]any{
			"lastname":  "Smith",
			"firstname": "Jan",
		}},
	})

	// map keys are emitted sorted for deterministic output
	if !strings.Contains(got, "<registrant_contact><firstname>Jan</firstname><lastname>Smith</lastname></registrant_contact>") {
		t.Fatalf("body = %s, want nested sorted contact fields", got)
	}
}

func TestRPCBodyMarshalScalarTypes(t *testing.T) {
	got := marshalBody(t, "renewDomain", Params{
		{Name: "years", Value: int64(3)},
		{Name: "auto", Value: true},
		{Name: "skipped", Value: nil},
	})

	if !strings.Contains(got, "<years>3</years>") {
		t.Fatalf("body = %s, want integer chardata", got)
	}
	if !strings.Contains(got, "<auto>true</auto>") {
		t.Fatalf("body = %s, want boolean chardata", got)
	}
	if strings.Contains(got, "skipped") {
		t.Fatalf("body = %s, nil params must be omitted", got)
	}
}

func decodeResult(t *testing.T, raw string) map[string]any {
	t.Helper()
	var res rpcResult
	if err := xml.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	return res.Fields
}

func TestRPCResultUnmarshalFlattensReturnWrapper(t *testing.T) {
	fields := decodeResult(t, `
<balanceQueryResponse>
  <return>
    <status>OK</status>
    <balance>100.00</balance>
  </return>
</balanceQueryResponse>`)

	if fields["status"] != "OK" {
		t.Fatalf("status = %v, want OK", fields["status"])
	}
	if fields["balance"] != "100.00" {
		t.Fatalf("balance = %v, want unchanged string 100.00", fields["balance"])
	}
}

func TestRPCResultUnmarshalRepeatedElementsBecomeSlices(t *testing.T) {
	fields := decodeResult(t, `
<listDNSZoneResponse>
  <return>
    <status>OK</status>
    <records>
      <item><id>1</id><type>A</type></item>
      <item><id>2</id><type>MX</type></item>
    </records>
  </return>
</listDNSZoneResponse>`)

	records, ok := fields["records"].(map[string]any)
	if !ok {
		t.Fatalf("records type = %T, want map", fields["records"])
	}
	items, ok := records["item"].([]any)
	if !ok {
		t.Fatalf("item type = %T, want slice", records["item"])
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	first, ok := items[0].(map[string]any)
	if !ok || first["id"] != "1" {
		t.Fatalf("items[0] = %v, want map with id 1", items[0])
	}
}

func TestRPCResultUnmarshalScalarOnlyResponse(t *testing.T) {
	fields := decodeResult(t, `<pingResponse><return>pong</return></pingResponse>`)

	if fields["return"] != "pong" {
		t.Fatalf("return = %v, want pong", fields["return"])
	}
}

func TestParamsGet(t *testing.T) {
	p := Params{{Name: "domainName", Value: "example.com"}}

	if v, ok := p.Get("domainName"); !ok || v != "example.com" {
		t.Fatalf("Get(domainName) = %v, %v", v, ok)
	}
	if _, ok := p.Get("missing"); ok {
		t.Fatal("Get(missing) ok = true, want false")
	}
}
