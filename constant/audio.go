package constant

// Audio
const (
	// AudioSampleRate is the playback sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDivisor sets speaker buffer length as 1/N of a second
	AudioBufferDivisor = 10
)
