package cheqprint_utils

// Endpoints exposed by the CheqPrint functions, relative to the base URL
const (
	EndpointBanks        = "banks"
	EndpointTemplates    = "templates"
	EndpointCompanies    = "companies"
	EndpointChequeBooks  = "cheque-books"
	EndpointPrintHistory = "print-history"
	EndpointPrintCheque  = "print-cheque"
	EndpointPrintBatch   = "print-batch"
)

// Maximum number of items listed under each read probe
const DisplayLimit = 5

// A cheque-book needs at least this many unused cheques before write probes may use it.
// One for the single print and two for the batch.
const MinRemainingCheques = 3

// Answer the operator must type to allow the write probes ("oui")
const AffirmativeAnswer = "o"

// Currency printed after every amount
const Currency = "FCFA"
