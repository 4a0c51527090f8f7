// Package speech provides speech recognizers for the assistant's
// voice input.
//
// Cloud records one utterance with an external command that writes raw
// LINEAR16 audio to stdout, then sends it to Google Cloud Speech-to-Text.
// Unsupported is used when voice input is disabled or not configured.
package speech
