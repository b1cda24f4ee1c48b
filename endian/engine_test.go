package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.NotNil(t, engine)
	require.Equal(t, binary.LittleEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.NotNil(t, engine)
	require.Equal(t, binary.BigEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestEndianEngine_AppendReadRoundTrip(t *testing.T) {
	engines := map[string]EndianEngine{
		"little endian": GetLittleEndianEngine(),
		"big endian":    GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			var buf []byte
			buf = engine.AppendUint16(buf, 0xDC10)
			buf = engine.AppendUint32(buf, 42)
			buf = engine.AppendUint64(buf, 0xDEADBEEFCAFEF00D)

			require.Len(t, buf, 14)
			require.Equal(t, uint16(0xDC10), engine.Uint16(buf[0:2]))
			require.Equal(t, uint32(42), engine.Uint32(buf[2:6]))
			require.Equal(t, uint64(0xDEADBEEFCAFEF00D), engine.Uint64(buf[6:14]))
		})
	}
}

func TestEndianEngines_ByteOrdersDiffer(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	leBuf := le.AppendUint32(nil, 0x01020304)
	beBuf := be.AppendUint32(nil, 0x01020304)

	require.NotEqual(t, leBuf, beBuf)

	// Reading with the wrong engine reverses the bytes.
	require.Equal(t, uint32(0x04030201), be.Uint32(leBuf))
}
