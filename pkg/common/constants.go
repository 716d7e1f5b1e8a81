/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package common

const (
	// SampleColumn holds the ordered sample index written by the offset monitor.
	SampleColumn = "Sample"

	// OffsetColumnSuffix marks per-camera offset columns, e.g. "cam0_offset_ns".
	OffsetColumnSuffix = "_offset_ns"

	// TraceFilePrefix matches both "ptp_offset_history.csv" and the timestamped
	// "ptp_offset_history_20250416_171155.csv" written by the camera GUI.
	TraceFilePrefix = "ptp_offset_history"
	TraceFileExt    = ".csv"
)

const (
	// DefaultThresholdNs 1us, acceptable offset from the PTP master.
	DefaultThresholdNs = 1000.0

	DefaultWidthInches     = 12.0
	DefaultHeightInches    = 6.0
	DefaultLineWidthPoints = 2.0
)

const (
	DefaultTitle  = "PTP Offsets per Camera Over Time"
	DefaultXLabel = "Sample Index"
	DefaultYLabel = "Offset from Master (ns)"

	ThresholdLabel = "Threshold"
)

type ColumnSelection string

const (
	// SuffixSelection plots the columns whose name ends with OffsetColumnSuffix.
	SuffixSelection ColumnSelection = "suffix"
	// PositionalSelection plots every column except the first one.
	PositionalSelection ColumnSelection = "positional"
)

const (
	CameraPreset  = "camera"
	HistoryPreset = "history"
)
