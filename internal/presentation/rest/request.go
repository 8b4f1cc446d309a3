package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/application/dto"
)

const maxBodyBytes = 1 << 20 // 1 MB

// readObject reads the body as a JSON object. A missing, malformed, or non-object body
// yields an empty object so that validation reports every missing field.
func readObject(r *http.Request) map[string]json.RawMessage {
	fields := map[string]json.RawMessage{}
	if r.Body == nil {
		return fields
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return fields
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return map[string]json.RawMessage{}
	}
	return fields
}

// stringField returns the value of a JSON string field, or "" for anything else.
func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// integerField returns the value of a JSON number field holding an integer that fits
// in int64. Strings, fractions and out-of-range numbers yield nil.
func integerField(fields map[string]json.RawMessage, name string) *int64 {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	if n, ok = v.(json.Number); !ok {
		return nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil || !d.IsInteger() {
		return nil
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || d.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return nil
	}
	i := d.IntPart()
	return &i
}

func decodeCreatePayment(r *http.Request) dto.CreatePaymentRequest {
	fields := readObject(r)
	return dto.CreatePaymentRequest{
		IdempotencyKey:         r.Header.Get(idempotencyKeyHeader),
		ExternalID:             stringField(fields, "externalId"),
		DebtorIBAN:             stringField(fields, "debtorIban"),
		CreditorIBAN:           stringField(fields, "creditorIban"),
		Currency:               stringField(fields, "currency"),
		AmountMinor:            integerField(fields, "amountMinor"),
		EndToEndID:             stringField(fields, "endToEndId"),
		RequestedExecutionDate: stringField(fields, "requestedExecutionDate"),
	}
}
