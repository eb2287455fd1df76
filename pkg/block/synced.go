package block

import (
	"github.com/hashicorp-forge/notion-extensions/pkg/notionid"
	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

// SyncedBlock is either an original synced block, which owns its children,
// or a reference to another synced block.
type SyncedBlock struct {
	from     string
	children *Children
}

// NewOriginalSynced returns an original synced block holding blocks.
func NewOriginalSynced(blocks ...Block) *SyncedBlock {
	return &SyncedBlock{children: NewChildren(blocks...)}
}

// NewReferenceSynced returns a block mirroring the synced block with the
// given ID. id may be a block URL.
func NewReferenceSynced(id string) (*SyncedBlock, error) {
	parsed, err := notionid.Parse(id, notionid.KindBlock)
	if err != nil {
		return nil, props.Invalid("SyncedBlock", err)
	}
	return &SyncedBlock{from: parsed}, nil
}

// IsOriginal reports whether this block owns its content.
func (b *SyncedBlock) IsOriginal() bool {
	return b.from == ""
}

// SyncedFrom returns the source block ID of a reference block.
func (b *SyncedBlock) SyncedFrom() string {
	return b.from
}

// Children returns the content of an original block.
func (b *SyncedBlock) Children() *Children {
	return b.children
}

func (*SyncedBlock) Type() Type { return TypeSyncedBlock }
func (*SyncedBlock) isBlock()   {}

// MarshalJSON implements json.Marshaler.
func (b *SyncedBlock) MarshalJSON() ([]byte, error) {
	if !b.IsOriginal() {
		return marshalBlock(b.Type(), payload{
			"synced_from": map[string]string{"block_id": b.from},
		})
	}
	return marshalBlock(b.Type(), payload{
		"synced_from": nil,
		"children":    b.children.Blocks(),
	})
}
