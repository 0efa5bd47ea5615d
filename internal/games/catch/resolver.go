package catch

// Resolver applies catch and miss outcomes after positions are updated.
type Resolver struct {
	FieldHeight      float64
	LevelUpThreshold int
}

// Resolve tests every object against the actor. Caught and missed objects are
// removed by compacting objects in place; the surviving prefix is returned.
// Each object triggers at most one outcome, so processing order does not
// change the final stats or the surviving set. When lives reach zero the
// pass still completes and EventGameOver is appended last.
func (r Resolver) Resolve(actor Actor, objects []FallingObject, stats *Stats, events []Event) ([]FallingObject, []Event) {
	hitbox := actor.Rect()
	kept := objects[:0]

	for _, obj := range objects {
		switch {
		case hitbox.Intersects(obj.Rect()):
			stats.Score++
			events = append(events, r.event(EventCaught, obj, stats))

			if level := LevelFor(stats.Score, r.LevelUpThreshold); level > stats.Level {
				stats.Level = level
				events = append(events, Event{
					Type:  EventLevelUp,
					Score: stats.Score,
					Lives: stats.Lives,
					Level: stats.Level,
				})
			}

		case obj.Y > r.FieldHeight:
			if stats.Lives > 0 {
				stats.Lives--
			}
			events = append(events, r.event(EventMissed, obj, stats))

		default:
			kept = append(kept, obj)
		}
	}

	if stats.Lives <= 0 {
		events = append(events, Event{
			Type:  EventGameOver,
			Score: stats.Score,
			Lives: 0,
			Level: stats.Level,
		})
	}

	return kept, events
}

func (r Resolver) event(t EventType, obj FallingObject, stats *Stats) Event {
	return Event{
		Type:     t,
		ObjectID: obj.ID,
		Kind:     obj.Kind,
		Score:    stats.Score,
		Lives:    stats.Lives,
		Level:    stats.Level,
	}
}
