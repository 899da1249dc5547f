package insights

// stopwords drops filler words from the word cloud. English only; the
// catalog descriptions are English.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "and": {}, "any": {}, "are": {}, "because": {},
	"been": {}, "before": {}, "being": {}, "below": {}, "between": {},
	"both": {}, "but": {}, "can": {}, "cannot": {}, "could": {}, "does": {},
	"doing": {}, "down": {}, "during": {}, "each": {}, "every": {}, "from": {},
	"further": {}, "game": {}, "games": {}, "have": {}, "having": {},
	"here": {}, "into": {}, "itself": {}, "just": {}, "like": {}, "made": {},
	"many": {}, "more": {}, "most": {}, "much": {}, "must": {}, "only": {},
	"onto": {}, "other": {}, "others": {}, "over": {}, "place": {},
	"play": {}, "played": {}, "player": {}, "players": {}, "playing": {},
	"same": {}, "should": {}, "some": {}, "such": {}, "take": {}, "than": {},
	"that": {}, "their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "under": {},
	"until": {}, "upon": {}, "used": {}, "uses": {}, "using": {}, "very": {},
	"well": {}, "were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "will": {}, "with": {}, "within": {}, "would": {},
	"your": {},
}
