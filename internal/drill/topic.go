package drill

import "fmt"

// Topic identifies a question category for a drill.
type Topic string

const (
	TopicSimplification Topic = "simplification"
	TopicSeries         Topic = "series"
	TopicQuadratic      Topic = "quadratic"
	TopicApproximation  Topic = "approximation"
)

// AllTopics lists every topic in home-screen display order.
func AllTopics() []Topic {
	return []Topic{
		TopicSimplification,
		TopicSeries,
		TopicQuadratic,
		TopicApproximation,
	}
}

// DisplayName returns the label used in menus and headers.
func (t Topic) DisplayName() string {
	switch t {
	case TopicSimplification:
		return "Simplification"
	case TopicSeries:
		return "Number Series"
	case TopicQuadratic:
		return "Quadratic Comparison"
	case TopicApproximation:
		return "Approximation"
	}
	return string(t)
}

// ParseTopic maps a topic string from the wire to a Topic.
func ParseTopic(s string) (Topic, error) {
	switch Topic(s) {
	case TopicSimplification, TopicSeries, TopicQuadratic, TopicApproximation:
		return Topic(s), nil
	}
	return "", fmt.Errorf("unknown topic: %q", s)
}
