// Package agora covers the two RTC-vendor integrations: signed access tokens
// for media and messaging channels, and the Conversational AI bot
// orchestration REST API.
package agora

import (
	"hash/fnv"

	rtctokenbuilder "github.com/AgoraIO/Tools/DynamicKey/AgoraDynamicKey/go/src/rtctokenbuilder2"
	rtmtokenbuilder "github.com/AgoraIO/Tools/DynamicKey/AgoraDynamicKey/go/src/rtmtokenbuilder2"
)

// TokenService builds Agora access tokens. With an unset app id or
// certificate both builders return an empty string; callers must treat an
// empty token as "not configured", never as a valid credential.
type TokenService struct {
	AppID          string
	AppCertificate string
	TTLSeconds     uint32
}

// RTCToken signs a media-channel token binding a numeric uid with the
// publisher role, valid for the configured TTL.
func (s TokenService) RTCToken(channel string, uid uint32) (string, error) {
	if s.AppID == "" || s.AppCertificate == "" {
		return "", nil
	}
	return rtctokenbuilder.BuildTokenWithUid(
		s.AppID, s.AppCertificate, channel, uid,
		rtctokenbuilder.RolePublisher, s.TTLSeconds, s.TTLSeconds,
	)
}

// RTMToken signs a messaging token binding a string user id.
func (s TokenService) RTMToken(userID string) (string, error) {
	if s.AppID == "" || s.AppCertificate == "" {
		return "", nil
	}
	return rtmtokenbuilder.BuildToken(s.AppID, s.AppCertificate, userID, s.TTLSeconds)
}

// NumericUID maps a string user id onto the numeric uid the RTC token binds.
// FNV-1a keeps the mapping stable across runs and builds, unlike the
// process-seeded hashing it replaces, and the mod keeps uids human-sized.
func NumericUID(userID string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return h.Sum32() % 100000000
}
