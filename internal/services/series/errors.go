package series

// SeriesError is a custom error type for series-related errors
type SeriesError string

// Error implements the error interface
func (e SeriesError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrDuplicateName         SeriesError = "player name already exists"
	ErrInvalidProvince       SeriesError = "invalid province"
	ErrPlayerNotFound        SeriesError = "player not found"
	ErrEventNotFound         SeriesError = "event not found"
	ErrDuplicateParticipant  SeriesError = "player is already on the event roster"
	ErrParticipationNotFound SeriesError = "participation not found"
	ErrRosterFull            SeriesError = "event roster is at capacity"
	ErrInvalidWinner         SeriesError = "winner must be an event participant"
	ErrChampionshipRoster    SeriesError = "championship roster is filled by event winners only"
	ErrMalformedSnapshot     SeriesError = "malformed snapshot payload"
	ErrRemoteUnavailable     SeriesError = "remote store is not configured"
	ErrNilConfig             SeriesError = "config cannot be nil"
	ErrNilSnapshotRepo       SeriesError = "snapshot repository cannot be nil"
	ErrNilClock              SeriesError = "clock cannot be nil"
)
