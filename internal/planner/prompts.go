package planner

import (
	"fmt"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// planSystemPrompt frames the assistant's persona and constraints.
const planSystemPrompt = `You are a helpful, encouraging and highly knowledgeable career guide for students in India.
Ground every recommendation in the Indian education system and job market.
Every resource link you give must be real, publicly reachable and relevant to the step it supports.`

// planPromptTemplate is filled with the profile fields in order:
// name, stage, grade/year, interests, goal.
const planPromptTemplate = `Act as an expert career counselor and life coach for students in India.

User Profile:
- Name: %s
- Current Status: %s (%s)
- Skills/Interests: %s
- Ultimate Goal: %s

Task:
1. Analyze the student's profile.
2. Create a detailed, step-by-step roadmap to achieve their goal.
3. IMPORTANT: Provide SPECIFIC resources relevant to INDIA for every step. Include links to official exam sites (JEE/NEET/UPSC/GATE), top courses (Coursera/Udemy/NPTEL) or standard books.
4. Create a realistic 7-day weekly study/practice schedule, one entry per day.
5. Provide a personalized motivational quote.

The output must be strictly valid JSON matching the schema provided.`

// BuildPrompt renders the user prompt for a profile. The four profile text
// fields appear verbatim.
func BuildPrompt(p domain.Profile) string {
	return fmt.Sprintf(planPromptTemplate, p.Name, p.Stage, p.GradeOrYear, p.Interests, p.Goal)
}
