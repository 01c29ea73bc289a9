package wellness

import "strings"

var copingStrategies = []string{
	"Try deep breathing exercises: inhale slowly for 4 seconds, hold for 7 seconds, exhale for 8 seconds.",
	"Take a short walk to clear your mind.",
	"Practice mindfulness or meditation for a few minutes.",
	"Write down your feelings in a journal.",
	"Reach out to a trusted friend or family member.",
}

var mentalWellnessTips = []string{
	"Remember, it's okay to have difficult days. Be kind to yourself.",
	"Try to maintain a regular sleep schedule.",
	"Engage in activities you enjoy to boost your mood.",
	"Limit caffeine and sugar intake, especially in the evening.",
	"Consider professional help if feelings persist or worsen.",
}

// CopingStrategies returns the full list of coping strategies.
func CopingStrategies() string {
	return strings.Join(copingStrategies, "\n")
}

// MentalWellnessTips returns the full list of mental wellness tips.
func MentalWellnessTips() string {
	return strings.Join(mentalWellnessTips, "\n")
}
