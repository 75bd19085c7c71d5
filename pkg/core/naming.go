package core

// DefaultPrefix namespaces every class name the toolkit generates when the
// configuration does not choose its own.
const DefaultPrefix = "tide"

// ModifierClass returns the class marking a state of base: "<base>--<mod>".
func ModifierClass(base, mod string) string {
	return base + "--" + mod
}

// ElementClass returns the class naming a child of base: "<base>-<element>".
func ElementClass(base, element string) string {
	return base + "-" + element
}
