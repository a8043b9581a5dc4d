package driver

// Stage is the front-end phase a file is in.
type Stage uint8

const (
	StageNone Stage = iota
	StageLex
	StageParse
)

// Status describes the state of one file.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is a progress update for one file of a multi-file run.
type Event struct {
	Path   string
	Stage  Stage
	Status Status
}

// ProgressSink receives progress events; implementations must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

func (s *Session) report(stage Stage, status Status) {
	if s.progress == nil || s.path == "" {
		return
	}
	s.progress.OnEvent(Event{Path: s.path, Stage: stage, Status: status})
}
