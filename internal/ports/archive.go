package ports

// Archive stores raw messages that produced corrections, keyed by message id,
// for later inspection of the match corpus. Saving the same id twice
// overwrites; the archive is an optional side channel and never gates a reply.
type Archive interface {
	SaveMessage(id int64, payload []byte) error
	Close() error
}
