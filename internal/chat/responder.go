// Package chat answers free-text questions with canned replies chosen by
// keyword.
package chat

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/mindmeal/mindmeal-cli/internal/refdata"
)

type keywordGroup struct {
	topic    refdata.ChatTopic
	keywords []string
}

// keywordGroups is checked in order against the lower-cased message; the
// first group with any substring hit picks the topic.
var keywordGroups = []keywordGroup{
	{refdata.TopicGreeting, []string{"hello", "hi", "hey"}},
	{refdata.TopicWeightLoss, []string{"weight loss", "lose weight", "slim"}},
	{refdata.TopicWeightGain, []string{"weight gain", "gain weight", "bulk"}},
	{refdata.TopicHighProtein, []string{"protein", "muscle"}},
	{refdata.TopicMentalHealth, []string{"mental", "mood", "stress", "anxiety", "depression"}},
	{refdata.TopicDiabetes, []string{"diabetes", "sugar", "blood sugar"}},
	{refdata.TopicCalories, []string{"calorie", "calories", "bmr", "tdee"}},
	{refdata.TopicExercise, []string{"exercise", "workout", "gym", "fitness"}},
}

// Classify returns the topic a message falls into.
func Classify(message string) refdata.ChatTopic {
	lower := strings.ToLower(message)
	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.topic
			}
		}
	}
	return refdata.TopicDefault
}

// Responder picks a uniformly random reply from the matched topic. It keeps
// no conversation state.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewResponder(seed int64) *Responder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Responder{rng: rand.New(rand.NewSource(seed))}
}

func (r *Responder) Reply(message string) string {
	replies := refdata.ChatResponses(Classify(message))
	r.mu.Lock()
	idx := r.rng.Intn(len(replies))
	r.mu.Unlock()
	return replies[idx]
}
