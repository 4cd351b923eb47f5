package arena

import (
	"math"
	"strconv"

	"github.com/bytearena/ecs"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

const logService = "arena"

// Dependencies are the collaborators handed to the arena at construction.
// Zones and Sink may be nil.
type Dependencies struct {
	World PhysicalWorld
	Zones []*Zone
	Sink  EventSink
}

type Episode struct {
	ID          uuid.UUID
	Number      int
	StartTick   int
	Elapsed     float64
	MaxDuration float64
	Ended       bool
	Outcome     *Outcome
}

type Outcome struct {
	Winner    Team
	HasWinner bool
	Reason    EndReason
	Duration  float64
	Banked    [2]int
}

func (o Outcome) WinnerName() string {
	if !o.HasWinner {
		return ""
	}

	return o.Winner.String()
}

type AgentResult struct {
	Key    AgentKey
	Reward float64
	Dead   bool
	Done   bool
}

type StepResult struct {
	Tick      int
	Episode   int
	EpisodeID uuid.UUID
	State     State
	Agents    []AgentResult
	Done      bool
	Outcome   *Outcome
}

// agent bundles the components of an agent entity.
type agent struct {
	entity     *ecs.Entity
	player     *Player
	health     *Health
	combat     *Combat
	carrier    *Carrier
	physical   *PhysicalBody
	steering   *Steering
	perception *Perception
	reward     *Reward
}

func (a *agent) key() AgentKey {
	return a.player.key
}

func (a *agent) alive() bool {
	return !a.health.IsDead()
}

// ArenaGame runs episodes of the two-team arena. It is not safe for concurrent use.
type ArenaGame struct {
	config Config
	world  PhysicalWorld
	zones  []*Zone
	sink   EventSink

	manager *ecs.Manager

	playerComponent       *ecs.Component
	healthComponent       *ecs.Component
	combatComponent       *ecs.Component
	carrierComponent      *ecs.Component
	physicalBodyComponent *ecs.Component
	steeringComponent     *ecs.Component
	perceptionComponent   *ecs.Component
	rewardComponent       *ecs.Component
	manaComponent         *ecs.Component
	obstacleComponent     *ecs.Component

	agentsView    *ecs.View
	obstaclesView *ecs.View
	manaView      *ecs.View

	state         State
	tick          int
	episodes      int
	episode       *Episode
	endingElapsed float64

	rosters     [2][]*agent
	agentsByKey map[AgentKey]*agent
	agentsByID  map[ecs.EntityID]*agent
	banked      [2]int
	deaths      [2]int
	manaTotal   int
	layoutBuilt bool

	spatial      *SpatialIndex
	spatialDirty bool
}

func NewArenaGame(config Config, deps Dependencies) (*ArenaGame, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid arena configuration")
	}

	if deps.World == nil {
		return nil, errors.New("arena needs a physical world")
	}

	sink := deps.Sink
	if sink == nil {
		sink = discardSink{}
	}

	manager := ecs.NewManager()

	game := &ArenaGame{
		config: config,
		world:  deps.World,
		zones:  deps.Zones,
		sink:   sink,

		manager: manager,

		playerComponent:       manager.NewComponent(),
		healthComponent:       manager.NewComponent(),
		combatComponent:       manager.NewComponent(),
		carrierComponent:      manager.NewComponent(),
		physicalBodyComponent: manager.NewComponent(),
		steeringComponent:     manager.NewComponent(),
		perceptionComponent:   manager.NewComponent(),
		rewardComponent:       manager.NewComponent(),
		manaComponent:         manager.NewComponent(),
		obstacleComponent:     manager.NewComponent(),

		state:       StateIdle,
		agentsByKey: make(map[AgentKey]*agent),
		agentsByID:  make(map[ecs.EntityID]*agent),
		spatial:     NewSpatialIndex(),
	}

	game.agentsView = manager.CreateView(
		game.playerComponent,
		game.physicalBodyComponent,
	)

	game.obstaclesView = manager.CreateView(
		game.obstacleComponent,
		game.physicalBodyComponent,
	)

	game.manaView = manager.CreateView(
		game.manaComponent,
	)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		physicalAspect := data.(*PhysicalBody)
		game.world.DestroyBody(physicalAspect.GetBody())
	})

	return game, nil
}

func (game *ArenaGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

// Start moves an idle arena into a fresh active episode.
func (game *ArenaGame) Start() bool {
	if game.state != StateIdle {
		return false
	}

	game.clearRosters()

	for _, zone := range game.zones {
		zone.reset()
	}

	if !game.layoutBuilt {
		game.buildLayout()
	} else {
		game.resetLayout()
	}

	game.banked = [2]int{}
	game.deaths = [2]int{}

	for _, team := range Teams {
		slots := game.config.Layout.SpawnSlots(team)
		count := game.config.AgentsPerTeam
		if len(slots) < count {
			count = len(slots)
		}

		for i := 0; i < count; i++ {
			a := game.newEntityAgent(AgentKey{Team: team, ID: i}, slots[i])
			game.rosters[team] = append(game.rosters[team], a)
			game.agentsByKey[a.key()] = a
			game.agentsByID[a.entity.GetID()] = a
		}
	}

	game.episodes++
	game.episode = &Episode{
		ID:          uuid.NewV4(),
		Number:      game.episodes,
		StartTick:   game.tick,
		MaxDuration: game.config.MaxDuration,
	}

	game.endingElapsed = 0
	game.spatialDirty = true
	game.state = StateActive

	game.emit(Event{Type: EventEpisodeStart})
	utils.Debug(logService, "episode "+strconv.Itoa(game.episode.Number)+" started ("+
		strconv.Itoa(len(game.rosters[Noxus]))+" Noxus vs "+strconv.Itoa(len(game.rosters[Ionia]))+" Ionia)")

	return true
}

func (game *ArenaGame) clearRosters() {
	entities := make([]*ecs.Entity, 0)
	for _, team := range Teams {
		for _, a := range game.rosters[team] {
			entities = append(entities, a.entity)
		}
		game.rosters[team] = make([]*agent, 0)
	}

	if len(entities) > 0 {
		game.manager.DisposeEntities(entities...)
	}

	game.agentsByKey = make(map[AgentKey]*agent)
	game.agentsByID = make(map[ecs.EntityID]*agent)
}

func (game *ArenaGame) buildLayout() {
	for i, spec := range game.config.Layout.Obstacles {
		game.newEntityObstacle(i, spec)
	}

	if game.config.Variant == VariantMana {
		for _, spawn := range game.config.Layout.Mana {
			game.newEntityMana(spawn)
		}
		game.manaTotal = len(game.config.Layout.Mana)
	}

	game.layoutBuilt = true
}

func (game *ArenaGame) resetLayout() {
	for _, entityresult := range game.obstaclesView.Get() {
		obstacleAspect := game.CastObstacle(entityresult.Components[game.obstacleComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		physicalAspect.
			SetPosition(obstacleAspect.GetStart()).
			SetVelocity(vector.MakeNullVector2()).
			SetHeading(0)
	}

	for _, entityresult := range game.manaView.Get() {
		game.CastManaItem(entityresult.Components[game.manaComponent]).reset()
	}
}

// Step advances the arena by dt seconds of simulated time.
// actions maps agents to this tick's command; missing agents act as no-op.
func (game *ArenaGame) Step(dt float64, actions map[AgentKey]Action) StepResult {
	if !(dt >= 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	switch game.state {
	case StateEnding:
		game.tick++
		game.endingElapsed += dt
		result := game.makeResult()

		if game.endingElapsed >= game.config.ResetDelay {
			game.state = StateIdle
			if game.config.AutoReset {
				game.Start()
			}
		}

		return result

	case StateIdle:
		return game.makeResult()
	}

	game.tick++
	game.episode.Elapsed += dt

	systemActions(game, actions, dt)

	game.world.Step(dt)
	game.spatialDirty = true

	systemHealZones(game, dt)
	systemIdle(game, dt)

	var outcome *Outcome
	if game.episode.Elapsed >= game.config.GraceWindow && !game.rostersEmpty() {
		outcome = systemWinCondition(game)
	}

	if outcome == nil && game.episode.Elapsed >= game.config.MaxDuration {
		outcome = systemTimeout(game)
	}

	if outcome != nil {
		game.endEpisode(outcome)
	}

	result := game.makeResult()
	for _, team := range Teams {
		for _, a := range game.rosters[team] {
			result.Agents = append(result.Agents, AgentResult{
				Key:    a.key(),
				Reward: a.reward.Drain(),
				Dead:   a.health.IsDead(),
				Done:   outcome != nil,
			})
		}
	}

	if outcome != nil {
		result.Done = true
		result.Outcome = outcome
	}

	return result
}

func (game *ArenaGame) makeResult() StepResult {
	result := StepResult{
		Tick:   game.tick,
		State:  game.state,
		Agents: make([]AgentResult, 0, len(game.rosters[Noxus])+len(game.rosters[Ionia])),
	}

	if game.episode != nil {
		result.Episode = game.episode.Number
		result.EpisodeID = game.episode.ID
	}

	return result
}

func (game *ArenaGame) rostersEmpty() bool {
	return len(game.rosters[Noxus]) == 0 && len(game.rosters[Ionia]) == 0
}

func (game *ArenaGame) endEpisode(outcome *Outcome) {
	if game.state != StateActive || game.episode.Ended {
		return
	}

	outcome.Duration = game.episode.Elapsed
	outcome.Banked = game.banked

	game.episode.Ended = true
	game.episode.Outcome = outcome
	game.state = StateEnding
	game.endingElapsed = 0

	if outcome.HasWinner {
		for _, team := range Teams {
			value := game.config.Rewards.Loss
			if team == outcome.Winner {
				value = game.config.Rewards.Win
			}

			for _, a := range game.rosters[team] {
				a.reward.addTerminal(value)
			}
		}

		utils.Debug(logService, "episode "+strconv.Itoa(game.episode.Number)+" won by "+outcome.Winner.String()+" ("+string(outcome.Reason)+")")
	} else if outcome.Reason == ReasonTimeout && game.config.Variant == VariantMana {
		utils.Debug(logService, "episode "+strconv.Itoa(game.episode.Number)+" ended in a draw")
	} else {
		utils.Warn(logService, "episode "+strconv.Itoa(game.episode.Number)+" ended without a winner ("+string(outcome.Reason)+")")
	}

	game.emit(Event{
		Type:     EventEpisodeEnd,
		Winner:   outcome.WinnerName(),
		Reason:   outcome.Reason,
		Duration: outcome.Duration,
		Banked: map[string]int{
			Noxus.String(): outcome.Banked[Noxus],
			Ionia.String(): outcome.Banked[Ionia],
		},
	})
}

func (game *ArenaGame) emit(event Event) {
	event.Tick = game.tick
	if game.episode != nil {
		event.Episode = game.episode.Number
		event.Time = game.episode.Elapsed
	}

	game.sink.Record(event)
}

func (game *ArenaGame) zoneFor(team Team) *Zone {
	for _, zone := range game.zones {
		if zone != nil && zone.GetTeam() == team {
			return zone
		}
	}

	return nil
}

func (game *ArenaGame) now() float64 {
	if game.episode == nil {
		return 0
	}

	return game.episode.Elapsed
}

func (game *ArenaGame) refreshSpatial() {
	if !game.spatialDirty {
		return
	}

	items := make([]Neighbor, 0)

	for _, entityresult := range game.agentsView.Get() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		items = append(items, Neighbor{
			ID:       entityresult.Entity.GetID(),
			Kind:     KindAgent,
			Position: physicalAspect.GetPosition(),
		})
	}

	for _, entityresult := range game.obstaclesView.Get() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		items = append(items, Neighbor{
			ID:       entityresult.Entity.GetID(),
			Kind:     KindObstacle,
			Position: physicalAspect.GetPosition(),
		})
	}

	for _, entityresult := range game.manaView.Get() {
		manaAspect := game.CastManaItem(entityresult.Components[game.manaComponent])
		if !manaAspect.IsActive() {
			continue
		}

		items = append(items, Neighbor{
			ID:       entityresult.Entity.GetID(),
			Kind:     KindMana,
			Position: manaAspect.GetPosition(),
		})
	}

	game.spatial.Rebuild(items)
	game.spatialDirty = false
}

// nearby queries the registry around position.
func (game *ArenaGame) nearby(position vector.Vector2, radius float64, kind EntityKind, accept func(n Neighbor) bool) []Neighbor {
	game.refreshSpatial()
	return game.spatial.Nearby(position, radius, kind, accept)
}

// liveOthers keeps live agents other than self.
func (game *ArenaGame) liveOthers(self *agent) func(n Neighbor) bool {
	return func(n Neighbor) bool {
		other, ok := game.agentsByID[n.ID]
		return ok && other != self && other.alive()
	}
}

func (game *ArenaGame) manaItem(id ecs.EntityID) *ManaItem {
	entityresult := game.getEntity(id, game.manaComponent)
	if entityresult == nil {
		return nil
	}

	return game.CastManaItem(entityresult.Components[game.manaComponent])
}
