package feedback

import (
	"fmt"
	"strings"

	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

// PraiseMessage is the fixed encouragement shown for a correct answer.
const PraiseMessage = "Gut gemacht! Du kannst die richtige Tonne wählen!"

// explanationSystemPrompt frames the model as a waste-separation expert and
// bounds the answer: at most 500 characters, German only, no prompt echo.
const explanationSystemPrompt = `Du bist ein Experte für Mülltrennung und erklärst, warum ein bestimmtes Produkt korrekt entsorgt werden sollte und es nicht in die vom Nutzer angegebene Kategorie gehört.
Gib eine Begründung, warum es den bestimmten Müllkategorie zugeordnet wird, die zur Verdeutlichung genannt wurde.
Verdeutliche dies mit einem Beispiel, warum die vom Nutzer gewählte Kategorie falsch ist.
Antwort in maximal 500 Zeichen und ausschließlich auf Deutsch.`

// buildQuery embeds the item, its true categories, and the learner's wrong
// selection into the explanation query.
func buildQuery(item waste.Item, selected []waste.Type) string {
	return fmt.Sprintf(
		"Verdeutliche, dass %s in die folgenden Müllkategorie(n) geworfen werden muss: %s? Der Nutzer hat sich für die falsche Müllart entschieden: %s",
		item.Name,
		item.TypesString(),
		joinTypes(selected),
	)
}

// hintLine is the locally built part of incorrect-answer feedback; it is
// shown even when the external explanation is unavailable.
func hintLine(item waste.Item) string {
	return fmt.Sprintf(
		"Das passt aber nicht so gut! Tipp: %s ist ein Produkt, das aufgrund der Aufbereitung den folgenden Tonnen zugeordnet wird: %s.",
		item.Name,
		item.TypesString(),
	)
}

func joinTypes(ts []waste.Type) string {
	labels := make([]string, len(ts))
	for i, t := range ts {
		labels[i] = t.String()
	}
	return strings.Join(labels, ", ")
}
