package component

// Name labels an entity so config reloads and look-at targets can find it.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
