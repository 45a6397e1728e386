package interfaces

import (
	"context"

	cpModels "github.com/voxtmault/cheqprint-smoke/models"
)

type Request interface {
	// Do sends one call to the CheqPrint API. Transport failures are folded into a result with
	// status 0; an error is only returned when the call could not be attempted at all.
	Do(ctx context.Context, method, endpoint string, payload any, auth bool) (*cpModels.RequestResult, error)
}

type Prober interface {
	// Read probes
	Banks(ctx context.Context) bool
	Templates(ctx context.Context) bool
	Companies(ctx context.Context) []cpModels.Company
	ChequeBooks(ctx context.Context) []cpModels.ChequeBook
	PrintHistory(ctx context.Context) bool

	// Write probes, these consume real cheque numbers
	PrintCheque(ctx context.Context, companyName, bankName string) bool
	PrintBatch(ctx context.Context, companyName, bankName string) bool
}

type Prompter interface {
	// Confirm shows the question and reports whether the operator agreed.
	Confirm(question string) bool
}
