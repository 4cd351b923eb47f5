package arena

import "strconv"

func (game *ArenaGame) newEntityObstacle(index int, spec ObstacleSpec) {
	position := spec.Position.Vector()
	body := game.world.NewObstacleBody("obstacle_"+strconv.Itoa(index), position, spec.HalfSize, spec.Mass)

	game.manager.NewEntity().
		AddComponent(game.obstacleComponent, &Obstacle{
			start:           position,
			halfSize:        spec.HalfSize,
			pushForce:       game.config.PushForce,
			maxPushDistance: game.config.MaxPushDistance,
		}).
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:   body,
			radius: spec.HalfSize,
		})
}
