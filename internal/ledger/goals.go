package ledger

import (
	"context"
	"fmt"
	"sort"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

// SetGoal validates and stores a savings goal under the user's goal
// collection. Extra fields on the goal pass through unvalidated.
func (s *Service) SetGoal(ctx context.Context, uid string, goal core.Goal) (string, error) {
	if err := goal.Validate(); err != nil {
		return "", err
	}
	key, err := s.store.Push(ctx, store.GoalsPath(uid), goal.Document())
	if err != nil {
		return "", fmt.Errorf("push goal: %w", err)
	}
	return key, nil
}

// Goals lists the user's goals with store keys attached, in key order for
// determinism. found is false when the user has no goal collection.
func (s *Service) Goals(ctx context.Context, uid string) ([]core.Goal, bool, error) {
	docs, err := s.store.List(ctx, store.GoalsPath(uid))
	if err != nil {
		return nil, false, fmt.Errorf("list goals: %w", err)
	}
	if len(docs) == 0 {
		return nil, false, nil
	}
	goals := make([]core.Goal, 0, len(docs))
	for key, doc := range docs {
		goals = append(goals, core.GoalFromDocument(key, doc))
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].Key < goals[j].Key })
	return goals, true, nil
}

// RemoveGoal deletes a goal by overwriting its location with an empty
// document, the store's delete convention. Removing a key that does not
// exist is not an error.
func (s *Service) RemoveGoal(ctx context.Context, uid, key string) error {
	if err := s.store.Set(ctx, store.GoalPath(uid, key), store.Document{}); err != nil {
		return fmt.Errorf("remove goal: %w", err)
	}
	return nil
}
