// SPDX-License-Identifier: EPL-2.0

// Package wavetable reads and writes the Fathom synthesizer XML wave table
// format.
//
// A table document holds one wave element per cycle:
//
//	<SynthWaveTable Name="Saw">
//	  <WaveTable>
//	    <wave>
//	      <Members WaveMode="DRAW" ObjectIdNumber="3" ModulatorId="0" TableX="0" TableY="0"/>
//	      <Buffer>
//	        <Members NumSamples="2048" Size="2048" SizeAllocated="2048" Index="0" IsDoubleSize="0"/>
//	        <Samples>0.0,0.0009765625,...</Samples>
//	      </Buffer>
//	    </wave>
//	  </WaveTable>
//	</SynthWaveTable>
//
// WriteTable emits that layout without indentation or XML declaration.
// WriteWaveform emits the single cycle SynthWaveform variant, prefixed by
// an XML declaration. Read accepts both and returns the samples of every
// cycle concatenated in document order. Anything but whitespace, comments
// and processing instructions after the document element is an error.
//
// Samples are written in the shortest form that parses back to the same
// float64, and always carry a decimal point or an exponent, so 0 is
// written as "0.0" and 1 as "1.0".
package wavetable
