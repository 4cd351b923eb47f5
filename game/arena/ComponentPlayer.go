package arena

type Player struct {
	key AgentKey
}

func (game ArenaGame) CastPlayer(data interface{}) *Player {
	return data.(*Player)
}

func (p Player) GetKey() AgentKey {
	return p.key
}

func (p Player) GetTeam() Team {
	return p.key.Team
}
