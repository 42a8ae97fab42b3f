package archive

import (
	"fmt"
	"strings"
)

// FormatProp identifies a property of an archive format handler.
type FormatProp uint32

const (
	FormatName FormatProp = iota
	FormatClassID
	FormatExtension
	FormatAddExtension
	FormatUpdate
	FormatKeepName
	FormatSignature
	FormatMultiSignature
	FormatSignatureOffset
	FormatAltStreams
	FormatNtSecure
	FormatFlags
	FormatTimeFlags
)

// MethodProp identifies a property of a codec.
type MethodProp uint32

const (
	MethodID MethodProp = iota
	MethodName
	MethodDecoder
	MethodEncoder
	MethodPackStreams
	MethodUnpackStreams
	MethodDescription
	MethodDecoderIsAssigned
	MethodEncoderIsAssigned
	MethodDigestSize
	MethodIsFilter
)

// FormatFlag describes how a format handler expects to be opened.
type FormatFlag uint32

const (
	FlagKeepName FormatFlag = 1 << iota
	FlagAltStreams
	FlagNtSecure
	FlagFindSignature
	FlagMultiSignature
	FlagUseGlobalOffset
	FlagStartOpen
	FlagPureStartOpen
	FlagBackwardOpen
	FlagPreArc
	FlagSymLinks
	FlagHardLinks
	FlagByExtOnlyOpen
	FlagHashHandler
	FlagCTime
	FlagCTimeDefault
	FlagATime
	FlagATimeDefault
	FlagMTime
	FlagMTimeDefault
)

// Has reports whether every bit of flag is set.
func (f FormatFlag) Has(flag FormatFlag) bool {
	return f&flag == flag
}

// AskMode tells the extract callback what the handler is about to do with an
// item.
type AskMode int32

const (
	AskExtract AskMode = iota
	AskTest
	AskSkip
)

func (m AskMode) String() string {
	switch m {
	case AskExtract:
		return "extract"
	case AskTest:
		return "test"
	case AskSkip:
		return "skip"
	}
	return fmt.Sprintf("AskMode(%d)", int32(m))
}

// OperationResult is the per-item outcome reported by the handler.
type OperationResult int32

const (
	ResultOK OperationResult = iota
	ResultUnsupportedMethod
	ResultDataError
	ResultCRCError
	ResultUnavailable
	ResultUnexpectedEnd
	ResultDataAfterEnd
	ResultIsNotArc
	ResultHeadersError
	ResultWrongPassword
)

var operationResultNames = []string{
	"ok",
	"unsupported method",
	"data error",
	"CRC error",
	"unavailable",
	"unexpected end of data",
	"data after end",
	"is not archive",
	"headers error",
	"wrong password",
}

func (r OperationResult) String() string {
	if r >= 0 && int(r) < len(operationResultNames) {
		return operationResultNames[r]
	}
	return fmt.Sprintf("OperationResult(%d)", int32(r))
}

// PropID identifies an item or archive property.
type PropID uint32

const (
	PropNoProperty PropID = iota
	PropMainSubfile
	PropHandlerItemIndex
	PropPath
	PropName
	PropExtension
	PropIsDir
	PropSize
	PropPackSize
	PropAttrib
	PropCTime
	PropATime
	PropMTime
	PropSolid
	PropCommented
	PropEncrypted
	PropSplitBefore
	PropSplitAfter
	PropDictionarySize
	PropCRC
	PropType
	PropIsAnti
	PropMethod
	PropHostOS
	PropFileSystem
	PropUser
	PropGroup
	PropBlock
	PropComment
	PropPosition
	PropPrefix
	PropNumSubDirs
	PropNumSubFiles
	PropUnpackVer
	PropVolume
	PropIsVolume
	PropOffset
	PropLinks
	PropNumBlocks
	PropNumVolumes
	PropTimeType
	PropBit64
	PropBigEndian
	PropCpu
	PropPhySize
	PropHeadersSize
	PropChecksum
	PropCharacts
	PropVa
	PropId
	PropShortName
	PropCreatorApp
	PropSectorSize
	PropPosixAttrib
	PropSymLink
	PropError
	PropTotalSize
	PropFreeSpace
	PropClusterSize
	PropVolumeName
	PropLocalName
	PropProvider
	PropNtSecure
	PropIsAltStream
	PropIsAux
	PropIsDeleted
	PropIsTree
	PropSha1
	PropSha256
	PropErrorType
	PropNumErrors
	PropErrorFlags
	PropWarningFlags
	PropWarning
	PropNumStreams
	PropNumAltStreams
	PropAltStreamsSize
	PropVirtualSize
	PropUnpackSize
	PropTotalPhySize
	PropVolumeIndex
	PropSubType
	PropShortComment
	PropCodePage
	PropIsNotArcType
	PropPhySizeCantBeDetected
	PropZerosTailIsAllowed
	PropTailSize
	PropEmbeddedStubSize
	PropNtReparse
	PropHardLink
	PropINode
	PropStreamId
	PropReadOnly
	PropOutName
	PropCopyLink
	PropArcFileName
	PropIsHash
	PropChangeTime
	PropUserId
	PropGroupId
	PropDeviceMajor
	PropDeviceMinor
	PropDevMajor
	PropDevMinor
)

var propIDNames = []string{
	"no_property",
	"main_subfile",
	"handler_item_index",
	"path",
	"name",
	"extension",
	"is_dir",
	"size",
	"pack_size",
	"attrib",
	"c_time",
	"a_time",
	"m_time",
	"solid",
	"commented",
	"encrypted",
	"split_before",
	"split_after",
	"dictionary_size",
	"crc",
	"type",
	"is_anti",
	"method",
	"host_os",
	"file_system",
	"user",
	"group",
	"block",
	"comment",
	"position",
	"prefix",
	"num_sub_dirs",
	"num_sub_files",
	"unpack_ver",
	"volume",
	"is_volume",
	"offset",
	"links",
	"num_blocks",
	"num_volumes",
	"time_type",
	"bit64",
	"big_endian",
	"cpu",
	"phy_size",
	"headers_size",
	"checksum",
	"characts",
	"va",
	"id",
	"short_name",
	"creator_app",
	"sector_size",
	"posix_attrib",
	"sym_link",
	"error",
	"total_size",
	"free_space",
	"cluster_size",
	"volume_name",
	"local_name",
	"provider",
	"nt_secure",
	"is_alt_stream",
	"is_aux",
	"is_deleted",
	"is_tree",
	"sha1",
	"sha256",
	"error_type",
	"num_errors",
	"error_flags",
	"warning_flags",
	"warning",
	"num_streams",
	"num_alt_streams",
	"alt_streams_size",
	"virtual_size",
	"unpack_size",
	"total_phy_size",
	"volume_index",
	"sub_type",
	"short_comment",
	"code_page",
	"is_not_arc_type",
	"phy_size_cant_be_detected",
	"zeros_tail_is_allowed",
	"tail_size",
	"embedded_stub_size",
	"nt_reparse",
	"hard_link",
	"i_node",
	"stream_id",
	"read_only",
	"out_name",
	"copy_link",
	"arc_file_name",
	"is_hash",
	"change_time",
	"user_id",
	"group_id",
	"device_major",
	"device_minor",
	"dev_major",
	"dev_minor",
}

func (id PropID) String() string {
	if int(id) < len(propIDNames) {
		return propIDNames[id]
	}
	return fmt.Sprintf("prop_%d", uint32(id))
}

// PropIDByName looks up a property by its snake_case name. Case and dashes
// are ignored, so "IsDir", "is-dir" and "is_dir" all resolve.
func PropIDByName(name string) (PropID, bool) {
	want := strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	for i, n := range propIDNames {
		if n == want || strings.ReplaceAll(n, "_", "") == want {
			return PropID(i), true
		}
	}
	return 0, false
}
