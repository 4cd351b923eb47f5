package types

// PhysicalBodyDescriptor is set as UserData on Box2D bodies so contacts and
// queries can tell which arena entity a body belongs to.
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   string
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Obstacle:
		return "Obstacle"
	case PhysicalBodyDescriptorType.Agent:
		return "Agent"
	case PhysicalBodyDescriptorType.Ground:
		return "Ground"
	}

	return "UnknownType"
}

var PhysicalBodyDescriptorType = struct {
	Obstacle _physicaltype
	Agent    _physicaltype
	Ground   _physicaltype
}{
	Obstacle: _physicaltype("o"),
	Agent:    _physicaltype("a"),
	Ground:   _physicaltype("g"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id string) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}
