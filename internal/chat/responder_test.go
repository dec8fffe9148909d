package chat

import (
	"testing"

	"github.com/mindmeal/mindmeal-cli/internal/refdata"
)

func TestClassifyPriorityOrder(t *testing.T) {
	t.Parallel()

	cases := map[string]refdata.ChatTopic{
		"How can I lose weight?":           refdata.TopicWeightLoss,
		"Hey, what about protein?":         refdata.TopicGreeting,
		"I want to BULK up":                refdata.TopicWeightGain,
		"Best protein sources":             refdata.TopicHighProtein,
		"feeling stress at work":           refdata.TopicMentalHealth,
		"blood sugar control":              refdata.TopicDiabetes,
		"what is my TDEE":                  refdata.TopicCalories,
		"gym routine":                      refdata.TopicExercise,
		"tell me a fact":                   refdata.TopicDefault,
		"muscle gain with less sugar":      refdata.TopicHighProtein,
		"anxiety about calories and sugar": refdata.TopicMentalHealth,
	}
	for in, want := range cases {
		if got := Classify(in); got != want {
			t.Fatalf("Classify(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestReplyStaysInBucket(t *testing.T) {
	t.Parallel()

	allowed := map[string]bool{}
	for _, s := range refdata.ChatResponses(refdata.TopicWeightLoss) {
		allowed[s] = true
	}
	r := NewResponder(42)
	for i := 0; i < 50; i++ {
		if got := r.Reply("How can I lose weight?"); !allowed[got] {
			t.Fatalf("reply outside weight_loss bucket: %q", got)
		}
	}
}
