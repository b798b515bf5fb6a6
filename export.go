package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/backend/witness"
	"github.com/rs/zerolog"
)

// exportArtifacts writes everything a downstream verifier needs:
//
//	proof.bin   gnark-native proof encoding (groth16.Proof ReadFrom/WriteTo)
//	vk.bin      gnark-native verifying key encoding
//	public.bin  public witness encoding
//	proof.raw   fixed-width uncompressed point encoding (see rawProofBytes)
//	public.raw  the radius as a 32-byte big-endian field element
func exportArtifacts(log zerolog.Logger, dir string, proof groth16.Proof, vk groth16.VerifyingKey, publicWitness witness.Witness, r int64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	if err := writeArtifact(filepath.Join(dir, "proof.bin"), proof); err != nil {
		return err
	}
	if err := writeArtifact(filepath.Join(dir, "vk.bin"), vk); err != nil {
		return err
	}
	if err := writeArtifact(filepath.Join(dir, "public.bin"), publicWitness); err != nil {
		return err
	}

	raw := rawProofBytes(proof.(*groth16_bn254.Proof))
	if err := os.WriteFile(filepath.Join(dir, "proof.raw"), raw, 0o644); err != nil {
		return fmt.Errorf("write proof.raw: %w", err)
	}

	var radius fr.Element
	radius.SetInt64(r)
	radiusBytes := radius.Bytes()
	if err := os.WriteFile(filepath.Join(dir, "public.raw"), radiusBytes[:], 0o644); err != nil {
		return fmt.Errorf("write public.raw: %w", err)
	}

	log.Info().
		Str("dir", dir).
		Int("rawProofSize", len(raw)).
		Str("rawProof", hex.EncodeToString(raw)).
		Msg("artifacts exported")
	return nil
}

func writeArtifact(path string, src io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := src.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// rawProofBytes packs the proof points into a fixed 256-byte layout for
// consumers that parse points directly instead of the gnark encoding:
// Ar (G1, 64 bytes) || Bs (G2, 128 bytes) || Krs (G1, 64 bytes), all
// uncompressed big-endian coordinates.
func rawProofBytes(proof *groth16_bn254.Proof) []byte {
	out := make([]byte, 256)

	ar := proof.Ar.RawBytes()
	copy(out[0:64], ar[:])

	bs := proof.Bs.RawBytes()
	copy(out[64:192], bs[:])

	krs := proof.Krs.RawBytes()
	copy(out[192:256], krs[:])

	return out
}
