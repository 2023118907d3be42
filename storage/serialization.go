// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/suggest/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalEntity serializes an Entity to bytes.
func MarshalEntity(entity *core.Entity) []byte {
	buf := make([]byte, core.EntityMUS.Size(*entity))
	core.EntityMUS.Marshal(*entity, buf)
	return buf
}

// UnmarshalEntity deserializes an Entity from bytes.
func UnmarshalEntity(data []byte) (*core.Entity, error) {
	entity, _, err := core.EntityMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// MarshalProfile serializes a LearnedProfile to bytes.
func MarshalProfile(profile *core.LearnedProfile) []byte {
	buf := make([]byte, core.LearnedProfileMUS.Size(*profile))
	core.LearnedProfileMUS.Marshal(*profile, buf)
	return buf
}

// UnmarshalProfile deserializes a LearnedProfile from bytes.
func UnmarshalProfile(data []byte) (*core.LearnedProfile, error) {
	profile, _, err := core.LearnedProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// MarshalInteraction serializes an Interaction to bytes.
func MarshalInteraction(interaction *core.Interaction) []byte {
	buf := make([]byte, core.InteractionMUS.Size(*interaction))
	core.InteractionMUS.Marshal(*interaction, buf)
	return buf
}

// UnmarshalInteraction deserializes an Interaction from bytes.
func UnmarshalInteraction(data []byte) (*core.Interaction, error) {
	interaction, _, err := core.InteractionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

// MarshalRankedResult serializes a RankedResult to bytes. Used for the
// suggestion cache payload.
func MarshalRankedResult(result *core.RankedResult) []byte {
	buf := make([]byte, core.RankedResultMUS.Size(*result))
	core.RankedResultMUS.Marshal(*result, buf)
	return buf
}

// UnmarshalRankedResult deserializes a RankedResult from bytes.
func UnmarshalRankedResult(data []byte) (*core.RankedResult, error) {
	result, _, err := core.RankedResultMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MarshalCount serializes a popularity counter to bytes.
func MarshalCount(count uint64) []byte {
	buf := make([]byte, varint.Uint64.Size(count))
	varint.Uint64.Marshal(count, buf)
	return buf
}

// UnmarshalCount deserializes a popularity counter from bytes.
func UnmarshalCount(data []byte) (uint64, error) {
	count, _, err := varint.Uint64.Unmarshal(data)
	return count, err
}
