package training

import "github.com/nao1215/trainingaudit/internal/model"

// CountCompletions reports, per training, how many distinct people have
// completed it. Trainings appear in the order they are first met while
// walking the ledger.
func CountCompletions(people []model.Person) ([]model.TrainingCount, error) {
	ledger, err := Deduplicate(people)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	counts := make([]model.TrainingCount, 0)
	for _, e := range ledger.Entries() {
		i, ok := index[e.Training]
		if !ok {
			i = len(counts)
			index[e.Training] = i
			counts = append(counts, model.TrainingCount{Training: e.Training})
		}
		counts[i].Count++
	}

	return counts, nil
}
