// Package codecdetail derives human-meaningful audio/video/script fields
// from the first few bytes of an FLV tag payload, consulting global
// metadata and the constants registry as fallbacks.
package codecdetail

import (
	"fmt"

	"flvkit/internal/core/amf0"
	"flvkit/internal/core/binaryio"
	"flvkit/internal/core/constants"
)

// AudioDetails are the decoded fields of an audio tag payload.
type AudioDetails struct {
	Format        string
	SampleRate    string
	SampleSize    string
	Channels      string
	AACPacketType string // empty unless Format == AAC
	AACObjectType string // empty unless this is an AAC sequence header
}

// DecodeAudio interprets an audio tag payload. meta is the file's global
// onMetaData map (nil if none was found), consulted for audiosamplerate /
// stereo fallbacks per the precedence chain in the FLV metadata spec:
// AAC-derived value > global metadata value > FLV-flag-byte enum.
func DecodeAudio(payload []byte, meta *amf0.Object) AudioDetails {
	if len(payload) == 0 {
		return AudioDetails{Format: "Empty"}
	}

	b0 := payload[0]
	format := int(b0 >> 4)
	rateEnum := int((b0 >> 2) & 0x03)
	sizeEnum := int((b0 >> 1) & 0x01)
	channelEnum := int(b0 & 0x01)

	d := AudioDetails{
		Format:     constants.LookupNumbered(constants.AudioFormats, format),
		SampleSize: constants.Lookup(constants.AudioBits, sizeEnum),
	}

	d.SampleRate = sampleRateFallback(meta, rateEnum)
	d.Channels = channelsFallback(meta, channelEnum)

	if format != 10 || len(payload) < 2 {
		return d
	}

	aacPacketType := payload[1]
	if aacPacketType == 0 {
		d.AACPacketType = "AAC sequence header"
	} else {
		d.AACPacketType = "AAC raw"
	}

	if aacPacketType == 0 && len(payload) >= 4 {
		objType, rateIdx, chanCfg := decodeAudioSpecificConfig(payload[2:])
		d.AACObjectType = constants.Lookup(constants.AACAudioObjectTypes, objType)
		if rate, ok := constants.AACSamplingFrequencies[rateIdx]; ok {
			d.SampleRate = rate
		}
		if ch, ok := constants.AACChannelConfigurations[chanCfg]; ok {
			d.Channels = ch
		}
	}

	return d
}

// sampleRateFallback applies the non-AAC precedence: global metadata
// audiosamplerate, else the FLV sample-rate enum.
func sampleRateFallback(meta *amf0.Object, rateEnum int) string {
	if meta != nil {
		if v, ok := meta.Get("audiosamplerate"); ok {
			if rate, ok := v.(float64); ok {
				return fmt.Sprintf("%d Hz", int(rate))
			}
		}
	}
	return constants.Lookup(constants.AudioRates, rateEnum)
}

// channelsFallback applies the non-AAC precedence: global metadata stereo
// flag, else the FLV channel enum.
func channelsFallback(meta *amf0.Object, channelEnum int) string {
	if meta != nil {
		if v, ok := meta.Get("stereo"); ok {
			if stereo, ok := v.(bool); ok {
				if stereo {
					return "Stereo"
				}
				return "Mono"
			}
		}
	}
	return constants.Lookup(constants.AudioChannels, channelEnum)
}

// decodeAudioSpecificConfig extracts object type (5 bits), sampling
// frequency index (4 bits), and channel configuration (4 bits) from the
// start of an AAC AudioSpecificConfig.
func decodeAudioSpecificConfig(b []byte) (objectType, rateIdx, chanCfg int) {
	br := binaryio.NewBitReader(b)
	objectType = int(br.Read(5))
	rateIdx = int(br.Read(4))
	chanCfg = int(br.Read(4))
	return
}
