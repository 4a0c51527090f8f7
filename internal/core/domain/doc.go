// Package domain holds the guide's vocabulary: topics and their steps,
// FAQ, tips and quiz questions; which steps a user has checked; assistant
// replies and search hits; presentation slides; and user settings.
//
// Nothing here does I/O. The package imports only the standard library,
// and every other package in the module may import it.
package domain
