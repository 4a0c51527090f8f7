// Package services is the guide's core. It matches questions to topics,
// runs searches and quizzes, and records progress and feedback, reaching
// storage and devices only through the driven ports.
//
// Arabic and Latin text is compared after golang.org/x/text case folding,
// so "question bank" finds "Question Bank".
package services
