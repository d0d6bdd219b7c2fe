package models

// StageIndex maps each stage to the distinct job names seen in it. Stages
// and names keep the order in which they were first seen.
type StageIndex struct {
	stages []string
	names  map[string][]string
	seen   map[string]map[string]bool
}

func NewStageIndex(records []Record) *StageIndex {
	index := &StageIndex{
		names: map[string][]string{},
		seen:  map[string]map[string]bool{},
	}

	for _, record := range records {
		index.add(record.Stage, record.Name)
	}

	return index
}

func (s *StageIndex) add(stage, name string) {
	names, ok := s.seen[stage]
	if !ok {
		names = map[string]bool{}
		s.seen[stage] = names
		s.stages = append(s.stages, stage)
	}

	if names[name] {
		return
	}

	names[name] = true
	s.names[stage] = append(s.names[stage], name)
}

func (s *StageIndex) Stages() []string {
	return append([]string(nil), s.stages...)
}

func (s *StageIndex) Names(stage string) []string {
	return append([]string(nil), s.names[stage]...)
}
