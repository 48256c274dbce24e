package cards

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Skeletonxf/card-game/game"
)

// Effects, triggers and conditions are polymorphic in the card files,
// discriminated by a "type" field:
//
//	effects:
//	  - type: on_summon
//	    mandatory: false
//	    trigger:
//	      type: destroy_self_unless
//	      condition:
//	        type: named_card_on_field
//	        name: Dragonification

func typeOf(node *yaml.Node) (string, error) {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return "", err
	}
	if head.Type == "" {
		return "", fmt.Errorf("missing type discriminator")
	}
	return head.Type, nil
}

func decodeEffect(node *yaml.Node) (game.Effect, error) {
	kind, err := typeOf(node)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "on_summon":
		var body struct {
			Mandatory bool      `yaml:"mandatory"`
			Trigger   yaml.Node `yaml:"trigger"`
		}
		if err := node.Decode(&body); err != nil {
			return nil, err
		}
		trigger, err := decodeTrigger(&body.Trigger)
		if err != nil {
			return nil, err
		}
		return &game.OnSummon{Mandatory: body.Mandatory, Trigger: trigger}, nil

	case "on_draw":
		var body struct {
			Mandatory bool      `yaml:"mandatory"`
			Trigger   yaml.Node `yaml:"trigger"`
		}
		if err := node.Decode(&body); err != nil {
			return nil, err
		}
		trigger, err := decodeTrigger(&body.Trigger)
		if err != nil {
			return nil, err
		}
		return &game.OnDraw{Mandatory: body.Mandatory, Trigger: trigger}, nil
	}

	return nil, fmt.Errorf("unknown effect type %q", kind)
}

func decodeTrigger(node *yaml.Node) (game.Trigger, error) {
	if node.Kind == 0 {
		return nil, fmt.Errorf("missing trigger")
	}
	kind, err := typeOf(node)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "destroy_self_unless":
		var body struct {
			Condition yaml.Node `yaml:"condition"`
		}
		if err := node.Decode(&body); err != nil {
			return nil, err
		}
		condition, err := decodeCondition(&body.Condition)
		if err != nil {
			return nil, err
		}
		return &game.DestroySelfUnless{Condition: condition}, nil

	case "swap_hand_with_field":
		return &game.SwapHandWithField{}, nil
	}

	return nil, fmt.Errorf("unknown trigger type %q", kind)
}

func decodeCondition(node *yaml.Node) (game.Condition, error) {
	if node.Kind == 0 {
		return nil, fmt.Errorf("missing condition")
	}
	kind, err := typeOf(node)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "named_card_on_field":
		var body struct {
			Name string `yaml:"name"`
		}
		if err := node.Decode(&body); err != nil {
			return nil, err
		}
		if body.Name == "" {
			return nil, fmt.Errorf("named_card_on_field needs a name")
		}
		return &game.NamedCardOnField{Name: body.Name}, nil
	}

	return nil, fmt.Errorf("unknown condition type %q", kind)
}
