package station

// AmountChangedEvent fires after a module instance amount changes.
type AmountChangedEvent struct {
	Module    *ModuleInstance
	OldAmount int
	NewAmount int
}

// ModuleAddedEvent fires after a new instance entry joins a group.
// Merges into an existing entry fire AmountChangedEvent instead.
type ModuleAddedEvent struct {
	Group  *Group
	Module *ModuleInstance
}

// ModuleRemovedEvent fires after an instance entry leaves a group.
type ModuleRemovedEvent struct {
	Group  *Group
	Module *ModuleInstance
}

// NameChangedEvent fires after a group rename.
type NameChangedEvent struct {
	Group *Group
}

// GroupAddedEvent fires after a group joins the station.
type GroupAddedEvent struct {
	Station *Station
	Group   *Group
}

// GroupRemovedEvent fires after a group leaves the station.
type GroupRemovedEvent struct {
	Station *Station
	Group   *Group
}
