package cheqprint_smoke

import (
	cpModels "github.com/voxtmault/cheqprint-smoke/models"
	cpUtil "github.com/voxtmault/cheqprint-smoke/utils"
)

// SelectActiveBook returns the first active cheque-book, in list order, with enough unused
// cheques for the write probes.
func SelectActiveBook(books []cpModels.ChequeBook) (cpModels.ChequeBook, bool) {
	for _, book := range books {
		if book.IsActive && book.Remaining() >= cpUtil.MinRemainingCheques {
			return book, true
		}
	}

	return cpModels.ChequeBook{}, false
}
