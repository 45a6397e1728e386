package cheqprint_probe

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	cpConfig "github.com/voxtmault/cheqprint-smoke/config"
	cpInterfaces "github.com/voxtmault/cheqprint-smoke/interfaces"
	cpModels "github.com/voxtmault/cheqprint-smoke/models"
	cpReport "github.com/voxtmault/cheqprint-smoke/report"
	cpUtil "github.com/voxtmault/cheqprint-smoke/utils"
)

// Sample values used by the write probes
const (
	SampleBeneficiary = "TEST API GO"
	SamplePlace       = "ABIDJAN"
)

var (
	SampleAmount = decimal.NewFromInt(123456)

	SampleBatchLines = []cpModels.BatchChequeLine{
		{Beneficiaire: "BATCH TEST 1", Montant: decimal.NewFromInt(50000)},
		{Beneficiaire: "BATCH TEST 2", Montant: decimal.NewFromInt(75000)},
	}
)

type ProbeService struct {

	// Dependency Injection
	Request  cpInterfaces.Request
	Reporter *cpReport.Reporter

	// Configs
	Config *cpConfig.Config
}

var _ cpInterfaces.Prober = &ProbeService{}

func NewProbeService(request cpInterfaces.Request, reporter *cpReport.Reporter, config *cpConfig.Config) *ProbeService {
	return &ProbeService{
		Request:  request,
		Reporter: reporter,
		Config:   config,
	}
}

// Read probes

func (s *ProbeService) Banks(ctx context.Context) bool {
	s.Reporter.Info("GET /banks - Liste des banques disponibles")

	result, ok := s.call(ctx, http.MethodGet, cpUtil.EndpointBanks, nil, false)
	if !ok {
		return false
	}

	var banks []cpModels.Bank
	if !s.decode(result, &banks) {
		return false
	}

	s.Reporter.Success("Trouvé %d banque(s)", len(banks))
	for _, bank := range firstN(banks) {
		s.Reporter.Item("- %s", bank.DisplayName())
	}

	return true
}

func (s *ProbeService) Templates(ctx context.Context) bool {
	s.Reporter.Info("GET /templates - Templates de chèques")

	result, ok := s.call(ctx, http.MethodGet, cpUtil.EndpointTemplates, nil, true)
	if !ok {
		return false
	}

	var templates []cpModels.Template
	if !s.decode(result, &templates) {
		return false
	}

	s.Reporter.Success("Trouvé %d template(s)", len(templates))
	return true
}

func (s *ProbeService) Companies(ctx context.Context) []cpModels.Company {
	s.Reporter.Info("GET /companies - Vos sociétés")

	result, ok := s.call(ctx, http.MethodGet, cpUtil.EndpointCompanies, nil, true)
	if !ok {
		return []cpModels.Company{}
	}

	companies := []cpModels.Company{}
	if !s.decode(result, &companies) {
		return []cpModels.Company{}
	}

	s.Reporter.Success("Trouvé %d société(s)", len(companies))
	for _, company := range firstN(companies) {
		s.Reporter.Item("- %s", company.DisplayName())
	}

	return companies
}

func (s *ProbeService) ChequeBooks(ctx context.Context) []cpModels.ChequeBook {
	s.Reporter.Info("GET /cheque-books - Vos carnets de chèques")

	result, ok := s.call(ctx, http.MethodGet, cpUtil.EndpointChequeBooks, nil, true)
	if !ok {
		return []cpModels.ChequeBook{}
	}

	books := []cpModels.ChequeBook{}
	if !s.decode(result, &books) {
		return []cpModels.ChequeBook{}
	}

	s.Reporter.Success("Trouvé %d carnet(s)", len(books))
	for _, book := range firstN(books) {
		s.Reporter.Item("- %s / %s (%d restants, %s)",
			cpModels.Display(book.CompanyName), cpModels.Display(book.BankName), book.Remaining(), book.StatusLabel())
	}

	return books
}

func (s *ProbeService) PrintHistory(ctx context.Context) bool {
	s.Reporter.Info("GET /print-history - Historique des impressions")

	// HistoryLimit is validated by Setup
	filter := cpModels.PrintHistoryFilter{Limit: s.Config.HistoryLimit}
	result, ok := s.call(ctx, http.MethodGet, cpUtil.EndpointPrintHistory+"?"+filter.QueryString(), nil, true)
	if !ok {
		return false
	}

	var page cpModels.PrintHistoryPage
	if !s.decode(result, &page) {
		return false
	}

	s.Reporter.Success("Total: %s impression(s)", page.TotalLabel())
	for _, record := range firstN(page.Records) {
		s.Reporter.Item("- Chèque #%s : %s - %s %s",
			cpModels.Display(record.ChequeNumber), cpModels.Display(record.Beneficiary), cpModels.Display(record.Amount), cpUtil.Currency)
	}

	return true
}

// Write probes

func (s *ProbeService) PrintCheque(ctx context.Context, companyName, bankName string) bool {
	s.Reporter.Info("POST /print-cheque - Imprimer un chèque")

	payload := cpModels.PrintChequeRequest{
		Beneficiaire: SampleBeneficiary,
		Montant:      SampleAmount,
		SelectedBank: bankName,
		CompanyName:  companyName,
		Lieu:         SamplePlace,
	}

	if pretty, err := json.MarshalIndent(payload, "   ", "  "); err == nil {
		s.Reporter.Item("Données: %s", pretty)
	}

	result, ok := s.call(ctx, http.MethodPost, cpUtil.EndpointPrintCheque, payload, true)
	if !ok {
		return false
	}

	var cheque cpModels.PrintedCheque
	if !s.decode(result, &cheque) {
		return false
	}

	s.Reporter.Success("Chèque imprimé avec succès!")
	s.Reporter.Item("Numéro: %s", cpModels.Display(cheque.ChequeNumber))
	s.Reporter.Item("Montant en lettres: %s", cpModels.Display(cheque.MontantEnLettres))

	return true
}

func (s *ProbeService) PrintBatch(ctx context.Context, companyName, bankName string) bool {
	s.Reporter.Info("POST /print-batch - Imprimer plusieurs chèques")

	payload := cpModels.PrintBatchRequest{
		SelectedBank: bankName,
		CompanyName:  companyName,
		Cheques:      append([]cpModels.BatchChequeLine(nil), SampleBatchLines...),
	}

	s.Reporter.Item("Nombre de chèques: %d", len(payload.Cheques))
	slog.Debug("batch submitted", "lines", len(payload.Cheques), "total", payload.TotalAmount().String())

	result, ok := s.call(ctx, http.MethodPost, cpUtil.EndpointPrintBatch, payload, true)
	if !ok {
		return false
	}

	var batch cpModels.BatchResult
	if !s.decode(result, &batch) {
		return false
	}

	s.Reporter.Success("Lot imprimé: %s chèques", cpModels.Display(batch.TotalProcessed))
	s.Reporter.Item("Montant total: %s %s", cpModels.Display(batch.TotalAmount), cpUtil.Currency)
	for _, cheque := range batch.Cheques {
		s.Reporter.Item("- #%s: %s - %s %s",
			cpModels.Display(cheque.ChequeNumber), cpModels.Display(cheque.Beneficiaire), cpModels.Display(cheque.Montant), cpUtil.Currency)
	}

	return true
}

// call sends the request and reports application or transport failures with the raw payload.
func (s *ProbeService) call(ctx context.Context, method, endpoint string, payload any, auth bool) (*cpModels.RequestResult, bool) {
	result, err := s.Request.Do(ctx, method, endpoint, payload, auth)
	if err != nil {
		slog.Debug("request not attempted", "endpoint", endpoint, "reason", err)
		s.Reporter.Error("Erreur: %s", err.Error())
		return nil, false
	}

	if !result.Success {
		s.Reporter.Error("Erreur: %s", result.ErrorPayload())
		return result, false
	}

	return result, true
}

func (s *ProbeService) decode(result *cpModels.RequestResult, target any) bool {
	if err := result.DecodeData(target); err != nil {
		slog.Debug("unexpected response shape", "request_id", result.RequestID, "reason", err)
		s.Reporter.Error("Erreur: %s", err.Error())
		return false
	}
	return true
}

func firstN[T any](items []T) []T {
	if len(items) > cpUtil.DisplayLimit {
		return items[:cpUtil.DisplayLimit]
	}
	return items
}
