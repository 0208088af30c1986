package maneuver

import (
	"fmt"
	"strings"

	"github.com/micutio/navkit/internal/l10n"
	"golang.org/x/text/language"
)

// nextStreetLookahead bounds how far ahead a missing street name is searched for. [m]
const nextStreetLookahead = 750

// Instruction is the resolved display text of a maneuver.
type Instruction struct {
	Text   string
	Icon   IconID
	Street string
}

// Resolver turns maneuvers into instructions using a string catalog.
// It holds no per-route state and can be shared.
type Resolver struct {
	catalog  l10n.Catalog
	language string
}

// NewResolver returns a resolver using the built-in catalog for tag.
func NewResolver(tag language.Tag) *Resolver {
	return NewResolverWithCatalog(tag, l10n.ForLanguage(tag))
}

// NewResolverWithCatalog returns a resolver using a custom string catalog.
func NewResolverWithCatalog(tag language.Tag, catalog l10n.Catalog) *Resolver {
	base, _ := tag.Base()

	return &Resolver{
		catalog:  catalog,
		language: base.String(),
	}
}

// Resolve returns the instruction for maneuvers[index]. An empty list or an index out of range
// yields the zero Instruction.
func (r *Resolver) Resolve(maneuvers []Maneuver, index int) Instruction {
	if index < 0 || index >= len(maneuvers) {
		return Instruction{}
	}

	current := &maneuvers[index]
	style := r.style(current)
	street := r.NextStreet(maneuvers, index)

	key := style.key
	if street != "" {
		key += ".street"
	}

	direction := r.catalog.Lookup(CompassFromOrientation(current.MapOrientation).catalogKey())
	text := strings.NewReplacer(
		"{street}", street,
		"{exit}", style.exit,
		"{direction}", direction,
	).Replace(r.catalog.Lookup(key))

	return Instruction{
		Text:   text,
		Icon:   style.icon,
		Street: street,
	}
}

// Icon returns the pictogram of a single maneuver.
func (r *Resolver) Icon(m Maneuver) IconID {
	return r.style(&m).icon
}

type instructionStyle struct {
	key  string
	icon IconID
	exit string
}

func (r *Resolver) style(m *Maneuver) instructionStyle {
	switch m.Action {
	case ActionEnd:
		return instructionStyle{key: "maneuver.arrive", icon: IconArrive}
	case ActionFerry:
		if m.hasAttribute(AttrCarShuttleTrain) {
			return instructionStyle{key: "maneuver.car_shuttle_train", icon: IconCarShuttleTrain}
		}

		return instructionStyle{key: "maneuver.ferry", icon: IconFerry}
	case ActionUTurn:
		return instructionStyle{key: "maneuver.uturn", icon: IconUTurn}
	case ActionEnterHighway:
		return instructionStyle{key: "maneuver.enter_highway", icon: IconEnterHighway}
	case ActionEnterHighwayFromLeft:
		return instructionStyle{key: "maneuver.enter_highway_left", icon: IconEnterHighwayLeft}
	case ActionEnterHighwayFromRight:
		return instructionStyle{key: "maneuver.enter_highway_right", icon: IconEnterHighwayRight}
	case ActionLeaveHighway:
		return r.leaveHighwayStyle(m)
	case ActionChangeHighway, ActionContinueHighway:
		if m.Turn.isKeep() {
			ts := turnStyles[m.Turn]

			return instructionStyle{key: ts.key, icon: ts.icon}
		}

		if m.Action == ActionChangeHighway {
			return instructionStyle{key: "maneuver.change_highway", icon: IconChangeHighway}
		}

		return instructionStyle{key: "maneuver.continue_highway", icon: IconStraight}
	case ActionJunction, ActionRoundabout:
		if exit := m.Turn.RoundaboutExit(); exit > 0 {
			return instructionStyle{
				key:  "maneuver.roundabout",
				icon: RoundaboutIcon(exit),
				exit: r.catalog.Lookup(fmt.Sprintf("ordinal.%d", exit)),
			}
		}

		if ts, ok := turnStyles[m.Turn]; ok {
			return instructionStyle{key: ts.key, icon: ts.icon}
		}
	case ActionUndefined, ActionNoAction:
	}

	// Undefined actions and undefined turns fall back to the compass heading.
	return instructionStyle{key: "maneuver.head", icon: IconHead}
}

func (r *Resolver) leaveHighwayStyle(m *Maneuver) instructionStyle {
	icon := IconLeaveHighwayRight
	if m.Turn == TurnKeepLeft || m.Turn == TurnLightLeft || m.Turn == TurnQuiteLeft || m.Turn == TurnHeavyLeft {
		icon = IconLeaveHighwayLeft
	}

	if m.Signpost != nil {
		if number := strings.TrimSpace(m.Signpost.ExitNumber); number != "" {
			return instructionStyle{key: "maneuver.leave_highway.exit", icon: icon, exit: number}
		}
	}

	return instructionStyle{key: "maneuver.leave_highway", icon: icon}
}
