package discord

import (
	"strings"

	"github.com/sirupsen/logrus"

	"gm-bridge-bot/internal/core/model"
	"gm-bridge-bot/logging"
)

// Карта перевода фирменных эмодзи GroupMe в шорткоды Discord.
// Пары charmap адресуют её как [набор][номер].
var emojiMap = [][]string{
	{},
	{
		":slightly_smiling_face:", ":grinning:", ":smile:", ":blush:", ":wink:", ":smiley:", ":smiling_face_with_3_hearts:", ":clown_face:",
		":zany_face:", ":yum:", ":disguised_face:", ":nerd:", ":sunglasses:", ":cowboy:", ":slight_frown:", ":frowning_face:",
		":persevere:", ":cry:", ":sob:", ":sweat:", ":angry:", ":rage:", ":smiling_imp:", ":face_with_raised_eyebrow:",
		":face_with_spiral_eyes:", ":face_vomiting:", ":dizzy_face:", ":weary_face:", ":frowning_face:", ":frowning_face:",
		":fearful_face:", ":neutral_face:", ":flushed_face:", ":nerd_face:", ":face_with_open_eyes_and_hand_over_mouth:",
		":face_with_peeking_eye:", ":neutral_face:", ":zipper_mouth_face:", ":face_exhaling:", ":melting_face:",
		":neutral_face:", ":shaking_face:", ":man_beard:", ":billed_cap:", ":nerd_face:", ":cup_with_straw:",
		":hot_beverage:", ":cookie:", ":lotion_bottle:", ":taco:", ":pizza:", ":bottle_with_popping_cork:", ":sake:",
		":glass_of_milk:", ":bubble_tea:", ":ping_pong:", ":joystick:", ":guitar:", ":hot_beverage:", ":bone:",
		":dog_face:", ":chipmunk:", ":t_rex:", ":heart:", ":100:", ":bread:", ":grinning_cat:", ":pouting_cat:",
		":grinning_cat:", ":grinning_cat:", ":grinning_cat:", ":grinning_cat:", ":grinning_cat:", ":grinning_cat:",
		":grinning_cat:", ":grinning_cat:", ":grinning_cat:", ":grinning_cat:", ":grinning_cat:", ":kissing_cat:",
		":grinning_cat:", ":grinning_cat:", ":grinning_cat:", ":grinning_cat:",
	},
	{
		":billed_cap:", ":diving_mask:", ":sunglasses:", ":safety_vest:", ":watermelon:", ":camera:", ":sunglasses:",
		":briefs:", ":bikini:", ":slightly_smiling_face:", ":lotion_bottle:", ":sun:", ":beach_with_umbrella:",
		":sunset:", ":fireworks:", ":soccer_ball:", ":diving_mask:", ":sun:", ":sun_with_face:", ":kite:",
		":person_surfing:", ":ring_buoy:", ":motor_boat:", ":running_shirt:", ":shorts:", ":bikini:",
		":thong_sandal:", ":lotion_bottle:", ":sunglasses:", ":billed_cap:", ":castle:", ":bucket:",
		":spiral_shell:", ":water_wave:", ":folding_hand_fan:", ":folding_hand_fan:", ":fire_engine:",
		":cold_face:", ":ice_cream:", ":baseball:", ":necktie:", ":jeans:", ":honeybee:", ":pouring_liquid:",
		":sunglasses:", ":automobile:", ":fire:", ":camping:", ":camping:", ":chocolate_bar:", ":mosquito:",
		":cook:", ":cut_of_meat:", ":poultry_leg:", ":hot_dog:", ":hamburger:", ":canned_food:", ":taco:",
		":bacon:", ":leafy_green:", ":tomato:", ":cucumber:", ":avocado:", ":peach:", ":blueberries:",
		":blueberries:", ":strawberry:", ":banana:", ":watermelon:", ":spoon:", ":tropical_drink:",
		":tropical_drink:", ":tropical_drink:", ":lime:", ":coconut:", ":lemon:", ":ice_cream:", ":shortcake:",
		":shark:", ":fish:", ":squid:", ":star:", ":crab:", ":lobster:", ":jellyfish:",
	},
	{
		":books:", ":nerd_face:", ":pen:", ":technologist:", ":test_tube:", ":artist:", ":backpack:", ":backpack:",
		":microphone:", ":men_wrestling:", ":football:", ":star_struck:", ":musical_notes:", ":party_popper:",
		":yawning_face:", ":worried_face:", ":student:", ":man_dancing:", ":woman_dancing:", ":trident:",
		":upside_down_face:", ":couch_and_lamp:", ":bus:", ":star:", ":slightly_frowning_face:", ":notebook:",
		":pencil:", ":small_airplane:", ":abacus:", ":world_map:", ":writing_hand:", ":bell:", ":student:",
		":student:", ":bento_box:", ":sandwich:", ":sports_medal:", ":person_fencing:", ":lacrosse:",
		":field_hockey:", ":running_shoe:", ":soccer_ball:", ":basketball:", ":baseball:", ":football:",
		":ice_hockey:", ":flying_disc:", ":stadium:", ":performing_arts:", ":bicycle:", ":sunglasses:", ":bed:",
		":basket:", ":alarm_clock:", ":volcano:", ":guitar:", ":video_game:", ":soon_arrow:", ":thong_sandal:",
		":shower:", ":pill:", ":student:", ":eggplant:", ":shorts:", ":shorts:", ":thong_sandal:",
		":hot_beverage:", ":steaming_bowl:", ":spaghetti:", ":takeout_box:", ":pizza:", ":french_fries:",
		":cup_with_straw:", ":identification_card:", ":cup_with_straw:", ":horse:", ":tumbler_glass:",
		":alpha:", ":beta:", ":gamma:", ":delta:", ":epsilon:", ":zeta:", ":eta:", ":theta:", ":iota:",
		":kappa:", ":lambda:", ":mu:", ":nu:", ":xi:", ":omicron:", ":pi:", ":rho:", ":sigma:", ":tau:",
		":upsilon:", ":phi:", ":chi:", ":psi:", ":omega:",
	},
	{
		":pirate_flag:", ":woman_mage:", ":ghost:", ":vampire:", ":zombie:", ":red_apple:", ":cowboy:", ":ogre:",
		":zombie:", ":man_zombie:", ":woman_zombie:", ":zombie:", ":axe:", ":police_officer:", ":lion:", ":wolf:",
		":scream:", ":princess:", ":dog:", ":jack_o_lantern:", ":spider_web:", ":skull:", ":skull:", ":ghost:",
		":coffin:", ":drop_of_blood:", ":spider:", ":bat:", ":mage:", ":jack_o_lantern:", ":candy:",
		":jack_o_lantern:", ":egg:", ":roll_of_paper:", ":black_cat:", ":broom:", ":headstone:",
	},
	{
		":turkey:", ":turkey:", ":fallen_leaf:", ":cook:", ":fork_and_knife:", ":fork_and_knife:", ":sleepy_face:",
		":luggage:", ":television:", ":turkey:", ":ear_of_corn:", ":turkey:", ":turkey:", ":turkey:",
		":poultry_leg:", ":turkey:", ":potato:", ":pot_of_food:", ":pot_of_food:", ":pot_of_food:",
		":green_salad:", ":bread:", ":dog:", ":fork_and_knife_with_plate:", ":fork_and_knife_with_plate:",
		":bone:", ":pie:", ":hot_beverage:", ":wine_glass:", ":sandwich:", ":menorah:", ":menorah:",
		":star_of_david:", ":moon_cake:",
	},
}

// fillEmojiPlaceholders заменяет символы-заполнители эмодзи GroupMe на
// шорткоды Discord по charmap вложений. Непереведённые эмодзи остаются
// заполнителями и только логируются.
func fillEmojiPlaceholders(text string, attachments []model.Attachment) string {
	for _, attachment := range attachments {
		emoji, ok := attachment.(model.EmojiAttachment)
		if !ok {
			continue
		}

		for _, pair := range emoji.Charmap {
			if len(pair) < 2 {
				continue
			}
			set, pick := pair[0], pair[1]
			if set < 0 || set >= len(emojiMap) || pick < 0 || pick >= len(emojiMap[set]) {
				logging.Log("Discord", logrus.WarnLevel, "Эмодзи ещё не переведён в шорткод Discord")
				continue
			}
			text = strings.Replace(text, emoji.Placeholder, emojiMap[set][pick], 1)
		}
	}
	return text
}
