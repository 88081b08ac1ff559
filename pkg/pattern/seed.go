package pattern

// SharedSeed notes that every failure came from runs using one seed.
type SharedSeed struct {
	Seed int64 `json:"seed"`
}

func (s *SharedSeed) Type() PatternType { return PatternTypeSharedSeed }
