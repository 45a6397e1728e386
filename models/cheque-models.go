package cheqprint_models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

const notAvailable = "N/A"

// Display renders an opaque API value, falling back to N/A when the field is absent.
func Display(v any) string {
	if v == nil {
		return notAvailable
	}
	if s, ok := v.(string); ok && s == "" {
		return notAvailable
	}
	return fmt.Sprint(v)
}

type Bank struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DisplayName prefers the bank name, then its code.
func (b Bank) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	if b.Code != "" {
		return b.Code
	}
	return notAvailable
}

type Company struct {
	Name string `json:"name"`
}

func (c Company) DisplayName() string {
	return Display(c.Name)
}

// Template is passed through untouched, only counted
type Template map[string]any

// ChequeCount is a cheque tally as sent by the API. Whole numbers written with a fraction,
// such as 10.0, are accepted; a fractional part is dropped.
type ChequeCount int

func (c *ChequeCount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return eris.Wrap(err, "decoding cheque count")
	}

	if n, err := number.Int64(); err == nil {
		*c = ChequeCount(n)
		return nil
	}

	f, err := number.Float64()
	if err != nil {
		return eris.Wrapf(err, "decoding cheque count %q", number.String())
	}
	*c = ChequeCount(f)

	return nil
}

type ChequeBook struct {
	CompanyName  string      `json:"companyName"`
	BankName     string      `json:"bankName"`
	TotalCheques ChequeCount `json:"totalCheques"`
	UsedCheques  ChequeCount `json:"usedCheques"`
	IsActive     bool        `json:"isActive"`
}

func (b ChequeBook) Remaining() int {
	return int(b.TotalCheques - b.UsedCheques)
}

func (b ChequeBook) StatusLabel() string {
	if b.IsActive {
		return "actif"
	}
	return "inactif"
}

type PrintHistoryRecord struct {
	ChequeNumber any `json:"chequeNumber"`
	Beneficiary  any `json:"beneficiary"`
	Amount       any `json:"amount"`
}

type PrintHistoryPage struct {
	Records []PrintHistoryRecord `json:"records"`
	Total   any                  `json:"total"`
}

// TotalLabel falls back to 0 when the API omits the total.
func (p PrintHistoryPage) TotalLabel() string {
	if p.Total == nil {
		return "0"
	}
	return fmt.Sprint(p.Total)
}

// Write payloads. Amounts are sent as JSON strings, which is what decimal marshals to.

type PrintChequeRequest struct {
	Beneficiaire string          `json:"beneficiaire"`
	Montant      decimal.Decimal `json:"montant"`
	SelectedBank string          `json:"selectedBank"`
	CompanyName  string          `json:"companyName"`
	Lieu         string          `json:"lieu"`
}

type BatchChequeLine struct {
	Beneficiaire string          `json:"beneficiaire"`
	Montant      decimal.Decimal `json:"montant"`
}

type PrintBatchRequest struct {
	SelectedBank string            `json:"selectedBank"`
	CompanyName  string            `json:"companyName"`
	Cheques      []BatchChequeLine `json:"cheques"`
}

// TotalAmount is the sum of the line amounts as submitted
func (r PrintBatchRequest) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range r.Cheques {
		total = total.Add(line.Montant)
	}
	return total
}

type PrintedCheque struct {
	ChequeNumber     any `json:"chequeNumber"`
	MontantEnLettres any `json:"montantEnLettres"`
	Beneficiaire     any `json:"beneficiaire"`
	Montant          any `json:"montant"`
}

type BatchResult struct {
	TotalProcessed any             `json:"totalProcessed"`
	TotalAmount    any             `json:"totalAmount"`
	Cheques        []PrintedCheque `json:"cheques"`
}
