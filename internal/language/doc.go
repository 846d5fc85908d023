// Package language maps user-supplied language codes and words to the
// human-readable names the Whisper CLI expects (e.g. "ja" -> "Japanese").
package language
