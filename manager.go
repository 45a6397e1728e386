package cheqprint_smoke

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rotisserie/eris"

	cpConfig "github.com/voxtmault/cheqprint-smoke/config"
	cpInterfaces "github.com/voxtmault/cheqprint-smoke/interfaces"
	cpLogger "github.com/voxtmault/cheqprint-smoke/logger"
	cpProbe "github.com/voxtmault/cheqprint-smoke/probe"
	cpReport "github.com/voxtmault/cheqprint-smoke/report"
	cpRequest "github.com/voxtmault/cheqprint-smoke/request"
)

var ErrMissingAPIKey = eris.New("api key is not configured")

const confirmationQuestion = "Ces tests vont consommer des numéros de chèques. Continuer?"

// Runner drives one smoke run from the banner to the summary.
type Runner struct {
	Config   *cpConfig.Config
	Prober   cpInterfaces.Prober
	Prompter cpInterfaces.Prompter
	Reporter *cpReport.Reporter
	RunLog   *cpLogger.RunLog
}

// NewRunner wires the real request helper and probes; answers are read from in, output goes to out.
func NewRunner(cfg *cpConfig.Config, in io.Reader, out io.Writer) *Runner {
	reporter := cpReport.NewReporter(out)
	runLog := cpLogger.NewRunLog()

	prober := cpProbe.NewProbeService(
		cpRequest.NewCheqPrintRequest(cfg, runLog),
		reporter,
		cfg,
	)

	return &Runner{
		Config:   cfg,
		Prober:   prober,
		Prompter: NewLinePrompter(in, reporter),
		Reporter: reporter,
		RunLog:   runLog,
	}
}

// Run executes the read probes, then the write probes when a usable cheque-book exists and the
// operator agrees. Probe failures are reported on the console, only a missing API key is an error.
func (r *Runner) Run(ctx context.Context) error {
	r.Reporter.Header("CheqPrint API - Tests Go")

	if !r.Config.HasAPIKey() {
		r.Reporter.Error("Clé API non configurée!")
		r.Reporter.Info("Créez un fichier .env avec: API_KEY=sk_live_VOTRE_CLE")
		r.Reporter.Info("Ou définissez la variable d'environnement API_KEY")
		return ErrMissingAPIKey
	}

	r.Reporter.Info("Clé API: %s", r.Config.MaskedAPIKey())
	r.Reporter.Info("URL: %s", r.Config.BaseURL)

	r.Reporter.Header("Tests de lecture")

	r.Prober.Banks(ctx)
	r.Prober.Templates(ctx)
	r.Prober.Companies(ctx)
	books := r.Prober.ChequeBooks(ctx)
	r.Prober.PrintHistory(ctx)

	r.Reporter.Header("Tests d'écriture")

	book, found := SelectActiveBook(books)
	if !found {
		r.Reporter.Error("Aucun carnet actif avec assez de chèques trouvé")
		r.Reporter.Info("Créez un carnet de chèques dans l'app CheqPrint")
	} else {
		r.Reporter.Info("Utilisation du carnet: %s / %s", book.CompanyName, book.BankName)

		if r.Prompter.Confirm(confirmationQuestion) {
			r.Prober.PrintCheque(ctx, book.CompanyName, book.BankName)
			r.Prober.PrintBatch(ctx, book.CompanyName, book.BankName)
		} else {
			slog.Debug("write probes declined by operator")
			r.Reporter.Info("Tests d'écriture ignorés")
		}
	}

	r.printSummary()
	r.Reporter.Header("Tests terminés")

	return nil
}

func (r *Runner) printSummary() {
	if r.RunLog == nil {
		return
	}

	r.Reporter.Header("Résumé")
	for _, log := range r.RunLog.Logs() {
		mark := "✓"
		if !log.Success {
			mark = "✗"
		}
		r.Reporter.Item("%s %-4s /%s -> %d (%s)", mark, log.HTTPMethod, log.Endpoint, log.StatusCode, log.Latency().Round(time.Millisecond))
	}

	summary := r.RunLog.Summary()
	r.Reporter.Info("%d appel(s): %d réussi(s), %d échoué(s) en %s",
		summary.Total, summary.Succeeded, summary.Failed, summary.Elapsed.Round(time.Millisecond))
}
