package b2brec

// Known-valid encoded B-CNAV3 frames (message type 10) and their
// decoded forms, used across the package tests.  Each encoded frame
// is 125 octets: the 0xEB90 sync header plus a 123-octet codeword
// whose information part carries a valid CRC-24Q.
//
// testShiftedPRN10 is the PRN 10 frame preceded by three zero bits,
// so every octet boundary of the original frame lands mid-octet.

import "encoding/hex"

const testEncodedPRN10Hex = "eb9028a33e454c535a61686f767d848b9299a0a7aeb5bcc3cad1d8dfe6edf4fb020910171e252c333a41484f565d646b727980878e959ca3aab1b8111a540ada4349abd14f789046050dba7b4fbd304efee675ff5bf9f6a2d818625e54b691cf63e696c04757ee78b2ebea8e6464dd5badcf2c5c8f9f8637c64c0bf000"

const testDecodedPRN10Hex = "28a33e454c535a61686f767d848b9299a0a7aeb5bcc3cad1d8dfe6edf4fb020910171e252c333a41484f565d646b727980878e959ca3aab1b8111a5402"

const testEncodedPRN12Hex = "eb9030a5636a71787f868d949ba2a9b0b7bec5ccd3dae1e8eff6fd040b121920272e353c434a51585f666d747b828990979ea5acb3bac1c8cfd6dd00412e5a23f1a81126146bc740eb62c14f1c1840675db5b8395afbb46462ae37c52b176f190b9460973e3fff31b6a013d13333bbb81f6f4f529f146f9932ff043000"

const testDecodedPRN12Hex = "30a5636a71787f868d949ba2a9b0b7bec5ccd3dae1e8eff6fd040b121920272e353c434a51585f666d747b828990979ea5acb3bac1c8cfd6dd00412e16"

const testShiftedPRN10Hex = "1d72051467c8a98a6b4c2d0deecfb09172533414f5d6b798795a3b1bfcddbe9f60412202e3c4a58667482909eacbac8d6e4f3010f1d2b39475563702234a815b4869357a29ef1208c0a1b74f69f7a609dfdccebfeb7f3ed45b030c4bca96d239ec7cd2d808eafdcf165d7d51cc8c9bab75b9e58b91f3f0c6f8c9817e0000"

func testFrameBytes(h string) []byte {
	var b, err = hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	return b
}
