package viewport

// Level identifies one tier of the drill-down hierarchy.
type Level uint8

// Drill-down levels, outermost first.
const (
	LevelRegion Level = iota
	LevelCity
	LevelProject
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelRegion:
		return "region"
	case LevelCity:
		return "city"
	case LevelProject:
		return "project"
	default:
		return "unknown"
	}
}

// Select records a selection at the given level and cascade-clears every
// deeper level, so a stale city or project can never survive a region
// change. Selection state is display bookkeeping only; it does not move
// the viewport. Selecting with an empty id behaves like ClearFrom.
//
// Centralizing the cascade here means no call site can forget to clear a
// dependent field.
func (v *Viewport) Select(level Level, id string) {
	if id == "" {
		v.ClearFrom(level)
		return
	}
	switch level {
	case LevelRegion:
		if v.selRegion != id {
			v.selCity = ""
			v.selProject = ""
		}
		v.selRegion = id
	case LevelCity:
		if v.selCity != id {
			v.selProject = ""
		}
		v.selCity = id
	case LevelProject:
		v.selProject = id
	}
}

// ClearFrom clears the selection at the given level and every deeper
// level.
func (v *Viewport) ClearFrom(level Level) {
	switch level {
	case LevelRegion:
		v.selRegion = ""
		fallthrough
	case LevelCity:
		v.selCity = ""
		fallthrough
	case LevelProject:
		v.selProject = ""
	}
}

// Selected returns the id selected at the given level, or "".
func (v *Viewport) Selected(level Level) string {
	switch level {
	case LevelRegion:
		return v.selRegion
	case LevelCity:
		return v.selCity
	case LevelProject:
		return v.selProject
	default:
		return ""
	}
}
