package arena

func (game *ArenaGame) newEntityMana(spawn Point) {
	position := spawn.Vector()

	game.manager.NewEntity().
		AddComponent(game.manaComponent, &ManaItem{
			state:    ManaLoose,
			position: position,
			spawn:    position,
		})
}
