package inbound

// ReplySeasonerPort applies the optional catchphrase flourish to a generated
// reply. Season is pure apart from its injected randomness and never changes
// a reply that already opens with a configured catchphrase.
type ReplySeasonerPort interface {
	Season(text string) string
}
