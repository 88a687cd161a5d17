package lesson

// speakDoneMsg is sent when a text-to-speech playback attempt finishes.
type speakDoneMsg struct {
	Err error
}

// listenDoneMsg is sent when a speech-recognition attempt finishes.
type listenDoneMsg struct {
	Transcript string
	Err        error
}
