// Package reason holds the fixed taxonomy of pick reasons. The short ID is
// what gets stored on a vote; the long name and description feed the UI.
package reason

// Group buckets reasons for display.
const (
	GroupModel   = "data-model"
	GroupContext = "match-context"
	GroupHuman   = "human-read"
	GroupMeta    = "meta-ai"
)

// Reason is one entry of the taxonomy.
type Reason struct {
	ID          string `json:"id"`
	LongName    string `json:"long_name"`
	Description string `json:"description"`
	Group       string `json:"group"`
}

var all = []Reason{
	{"Stats", "Statistical model", "Data-driven read: rolling averages, ratings, pace, efficiency, projections", GroupModel},
	{"Fatigue", "Load & schedule", "Back-to-back, 3-in-4 stretches, minutes load, travel sequences", GroupModel},
	{"Home/Away", "Court advantage", "Home/road performance splits, travel fatigue, local context", GroupModel},
	{"Effectif", "Availability & rotation", "Absences, injuries, recent returns, limited minutes or rotation changes", GroupModel},
	{"Mismatch", "Roster imbalance", "Clear gap in talent, depth or overall quality independent of injuries", GroupModel},
	{"Forme", "Recent momentum", "Performance level over the last games: results, consistency, quality of play", GroupContext},
	{"Motivation", "Stakes & emotion", "Rivalry, revenge game, playoff implications, particular mental dynamics", GroupContext},
	{"Intuition", "Human intuition", "Subjective read based on experience, feel, or weak signals the model misses", GroupHuman},
	{"Value", "Odds value", "Perceived gap between real probability and the bookmaker's line", GroupHuman},
	{"IA+", "Agrees with the AI", "Pick aligned with the model's recommendation", GroupMeta},
	{"IA-", "Against the AI", "Pick deliberately opposed to the model's recommendation", GroupMeta},
}

var byID = func() map[string]Reason {
	m := make(map[string]Reason, len(all))
	for _, r := range all {
		m[r.ID] = r
	}
	return m
}()

// All returns the taxonomy in display order.
func All() []Reason {
	out := make([]Reason, len(all))
	copy(out, all)
	return out
}

// ByID looks up a reason by its short ID.
func ByID(id string) (Reason, bool) {
	r, ok := byID[id]
	return r, ok
}

// Valid reports whether id is part of the taxonomy.
func Valid(id string) bool {
	_, ok := byID[id]
	return ok
}
