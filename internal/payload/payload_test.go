package payload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWiFi_EncodeWireFormat(t *testing.T) {
	t.Parallel()

	network := WiFi{SSID: "mynetwork", Password: "mypass", Security: "WPA"}

	require.Equal(t, "WIFI:T:WPA;S:mynetwork;P:mypass;H:false;;", network.Encode())
}

func TestWiFi_EncodeEscapesMetacharacters(t *testing.T) {
	t.Parallel()

	network := WiFi{SSID: `net;with:odd,"chars\`, Password: "p;w", Security: "WEP", Hidden: true}

	encoded := network.Encode()

	require.Contains(t, encoded, `S:net\;with\:odd\,\"chars\\;`)
	require.Contains(t, encoded, `P:p\;w;`)
	require.Contains(t, encoded, "H:true;;")
}

func TestWiFi_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		network WiFi
	}{
		{"plain", WiFi{SSID: "home", Password: "secret", Security: "WPA"}},
		{"hidden nopass", WiFi{SSID: "guest", Security: "nopass", Hidden: true}},
		{"metacharacters", WiFi{SSID: `a;b:c,d"e\f`, Password: `:;"`, Security: "WEP"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			parsed, err := ParseWiFi(tc.network.Encode())

			// --- Assert ---
			require.NoError(t, err)
			require.Equal(t, tc.network, parsed)
		})
	}
}

func TestParseWiFi_RejectsOtherPayloads(t *testing.T) {
	t.Parallel()

	_, err := ParseWiFi("https://example.com")

	require.ErrorIs(t, err, ErrNotWiFi)
}

func TestDetectKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Kind
	}{
		{"https://example.com", KindURL},
		{"http://example.com", KindURL},
		{"WIFI:T:WPA;S:x;P:y;H:false;;", KindWiFi},
		{"tel:+1555123456", KindTel},
		{"mailto:someone@example.com", KindEmail},
		{"just some text", KindText},
		{"ftp://example.com", KindText},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, DetectKind(tc.in))
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "URL", KindURL.String())
	require.Equal(t, "WiFi network", KindWiFi.String())
	require.Equal(t, "plain text", KindText.String())
}
